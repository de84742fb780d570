package client

import (
	"context"
	"net/http"

	"github.com/coffeehouse/e2e/internal/models"
)

// AuthClient covers the registration and login endpoints. It carries no
// token: both operations are unauthenticated.
type AuthClient struct {
	http *Client
}

func NewAuthClient(baseURL string, opts ...Option) *AuthClient {
	return &AuthClient{http: New(baseURL, opts...)}
}

// Register creates a new backend user and returns its representation,
// including the backend-assigned identifier and default role.
func (c *AuthClient) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return call[models.User](ctx, c.http, http.MethodPost, "/api/auth/register", nil, req)
}

// Login exchanges credentials for a session token.
func (c *AuthClient) Login(ctx context.Context, req models.AuthRequest) (models.AuthResponse, error) {
	return call[models.AuthResponse](ctx, c.http, http.MethodPost, "/api/auth/login", nil, req)
}
