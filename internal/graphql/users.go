package graphql

import (
	"context"

	"github.com/coffeehouse/e2e/internal/models"
)

// UsersService drives user operations through GraphQL.
type UsersService struct {
	client *Client
}

func NewUsersService(client *Client) *UsersService {
	return &UsersService{client: client}
}

// CreateUser creates a user with an explicit role through the
// createUser mutation. Unlike REST registration, the role is accepted
// directly.
func (s *UsersService) CreateUser(ctx context.Context, req models.UserRequest) (models.User, error) {
	variables := map[string]any{
		"username": req.Username,
		"email":    req.Email,
		"password": req.Password,
		"role":     req.Role.String(),
	}
	return execute[models.User](ctx, s.client, "create_user", "createUser", variables)
}

// UsersByRole returns every user holding the given role.
func (s *UsersService) UsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	variables := map[string]any{"role": role.String()}
	return execute[[]models.User](ctx, s.client, "users_by_role", "users", variables)
}
