// Package actor provisions ready-to-use authenticated test identities.
//
// Building an actor coordinates three subsystems: REST auth
// (registration and login), direct database mutation (role escalation),
// and client-set assembly. The stages run strictly in that order so the
// issued session token reflects the final role.
package actor

import (
	"github.com/coffeehouse/e2e/internal/client"
	"github.com/coffeehouse/e2e/internal/models"
)

// Actor is a fully provisioned, authenticated test identity. It is
// immutable after construction and owned exclusively by the scenario
// that requested it. The plaintext password is retained only so a
// scenario can re-authenticate.
type Actor struct {
	ID       int64
	Username string
	Role     models.Role
	Password string
	Token    string

	// Clients are pre-configured with this actor's token and never
	// shared with another actor.
	Clients *client.Set
}
