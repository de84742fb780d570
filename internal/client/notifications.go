package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coffeehouse/e2e/internal/models"
)

// NotificationsClient maps notification operations to /api/notifications.
type NotificationsClient struct {
	http *Client
}

func NewNotificationsClient(baseURL, token string) *NotificationsClient {
	return &NotificationsClient{http: New(baseURL, WithToken(token))}
}

func (c *NotificationsClient) List(ctx context.Context, params *models.PageParams) (models.Page[models.Notification], error) {
	return call[models.Page[models.Notification]](ctx, c.http, http.MethodGet, "/api/notifications", pageQuery(params), nil)
}

func (c *NotificationsClient) MarkRead(ctx context.Context, id int64) error {
	_, err := callRaw(ctx, c.http, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/read", id), nil, nil)
	return err
}

func (c *NotificationsClient) MarkAllRead(ctx context.Context) error {
	_, err := callRaw(ctx, c.http, http.MethodPatch, "/api/notifications/read-all", nil, nil)
	return err
}

func (c *NotificationsClient) DeleteAll(ctx context.Context) error {
	_, err := callRaw(ctx, c.http, http.MethodDelete, "/api/notifications", nil, nil)
	return err
}
