package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/coffeehouse/e2e/internal/models"
)

// UsersClient maps user management operations to /api/users.
type UsersClient struct {
	http *Client
}

func NewUsersClient(baseURL, token string) *UsersClient {
	return &UsersClient{http: New(baseURL, WithToken(token))}
}

func (c *UsersClient) Create(ctx context.Context, req models.UserRequest) (models.User, error) {
	return call[models.User](ctx, c.http, http.MethodPost, "/api/users", nil, req)
}

func (c *UsersClient) List(ctx context.Context, params *models.PageParams) (models.Page[models.User], error) {
	return call[models.Page[models.User]](ctx, c.http, http.MethodGet, "/api/users", pageQuery(params), nil)
}

func (c *UsersClient) ListAll(ctx context.Context) ([]models.User, error) {
	return call[[]models.User](ctx, c.http, http.MethodGet, "/api/users/all", nil, nil)
}

func (c *UsersClient) Get(ctx context.Context, id int64) (models.User, error) {
	return call[models.User](ctx, c.http, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, nil)
}

func (c *UsersClient) Update(ctx context.Context, id int64, req models.UserRequest) (models.User, error) {
	return call[models.User](ctx, c.http, http.MethodPut, fmt.Sprintf("/api/users/%d", id), nil, req)
}

func (c *UsersClient) Delete(ctx context.Context, id int64) error {
	_, err := callRaw(ctx, c.http, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil)
	return err
}

// Export downloads the users-with-orders report as an opaque byte
// payload in the requested format.
func (c *UsersClient) Export(ctx context.Context, format string) ([]byte, error) {
	query := url.Values{}
	query.Set("format", format)
	return callRaw(ctx, c.http, http.MethodGet, "/api/users/export", query, nil)
}
