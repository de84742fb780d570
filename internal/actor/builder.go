package actor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coffeehouse/e2e/internal/client"
	"github.com/coffeehouse/e2e/internal/models"
)

// RoleWriter escalates a user's role by writing the database directly,
// bypassing backend authorization. Satisfied by store.UserRepo.
type RoleWriter interface {
	UpdateRole(ctx context.Context, id int64, role models.Role) error
}

// Builder creates actors with an arbitrary role. One Create call runs
// four sequential stages: generate credentials, register through the
// API, escalate the role in the database when needed, then log in and
// assemble the client set.
type Builder struct {
	auth    *client.AuthClient
	users   RoleWriter
	baseURL string
}

func NewBuilder(auth *client.AuthClient, users RoleWriter, baseURL string) *Builder {
	return &Builder{auth: auth, users: users, baseURL: baseURL}
}

// Create provisions an actor holding the requested role. Any stage
// failure is fatal to this call and surfaced unchanged: no partial
// actor is returned and nothing is retried. Registered backend users
// are never deleted; usernames are unique per build, so accumulated
// accounts cannot collide across runs.
func (b *Builder) Create(ctx context.Context, role models.Role) (*Actor, error) {
	role, err := models.ParseRole(role.String())
	if err != nil {
		return nil, err
	}
	zap.S().Infow("creating actor", "role", role)

	// Stage 1: unique credentials. The uuid suffix keeps usernames
	// collision-free across concurrent runs without retries.
	username, email, password := generateCredentials(role)
	regReq, err := models.NewRegisterRequest(username, email, password)
	if err != nil {
		return nil, err
	}

	// Stage 2: register.
	user, err := b.auth.Register(ctx, regReq)
	if err != nil {
		return nil, fmt.Errorf("registering %s: %w", username, err)
	}

	// Stage 3: escalate before login. The backend embeds the role in
	// the token at login time, so this ordering is load-bearing.
	if role != models.DefaultRole {
		if err := b.users.UpdateRole(ctx, user.ID, role); err != nil {
			return nil, fmt.Errorf("escalating %s to %s: %w", username, role, err)
		}
		user = user.WithRole(role)
	}

	// Stage 4: authenticate with the registration credentials.
	loginReq, err := models.NewAuthRequest(username, password)
	if err != nil {
		return nil, err
	}
	auth, err := b.auth.Login(ctx, loginReq)
	if err != nil {
		return nil, fmt.Errorf("logging in %s: %w", username, err)
	}

	zap.S().Infow("actor ready", "id", user.ID, "username", user.Username, "role", user.Role)
	return &Actor{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Password: password,
		Token:    auth.Token,
		Clients:  client.NewSet(b.baseURL, auth.Token),
	}, nil
}

func generateCredentials(role models.Role) (username, email, password string) {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	username = fmt.Sprintf("%s_%s", strings.ToLower(role.String()), suffix[:12])
	email = username + "@coffeehouse.test"
	password = "Pw1-" + suffix[12:24]
	return username, email, password
}
