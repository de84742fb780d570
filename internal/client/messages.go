package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coffeehouse/e2e/internal/models"
)

// MessagesClient maps messaging operations to /api/messages.
type MessagesClient struct {
	http *Client
}

func NewMessagesClient(baseURL, token string) *MessagesClient {
	return &MessagesClient{http: New(baseURL, WithToken(token))}
}

func (c *MessagesClient) Create(ctx context.Context, req models.MessageRequest) (models.Message, error) {
	return call[models.Message](ctx, c.http, http.MethodPost, "/api/messages", nil, req)
}

func (c *MessagesClient) List(ctx context.Context) ([]models.Message, error) {
	return call[[]models.Message](ctx, c.http, http.MethodGet, "/api/messages", nil, nil)
}

func (c *MessagesClient) Get(ctx context.Context, id int64) (models.Message, error) {
	return call[models.Message](ctx, c.http, http.MethodGet, fmt.Sprintf("/api/messages/%d", id), nil, nil)
}

func (c *MessagesClient) ListBySender(ctx context.Context, senderID int64) ([]models.Message, error) {
	return call[[]models.Message](ctx, c.http, http.MethodGet, fmt.Sprintf("/api/messages/sender/%d", senderID), nil, nil)
}

func (c *MessagesClient) ListByReceiver(ctx context.Context, receiverID int64) ([]models.Message, error) {
	return call[[]models.Message](ctx, c.http, http.MethodGet, fmt.Sprintf("/api/messages/receiver/%d", receiverID), nil, nil)
}

// Dialog returns the conversation between two users.
func (c *MessagesClient) Dialog(ctx context.Context, senderID, receiverID int64) ([]models.Message, error) {
	return call[[]models.Message](ctx, c.http, http.MethodGet, fmt.Sprintf("/api/messages/dialog/%d/%d", senderID, receiverID), nil, nil)
}

func (c *MessagesClient) Delete(ctx context.Context, id int64) error {
	_, err := callRaw(ctx, c.http, http.MethodDelete, fmt.Sprintf("/api/messages/%d", id), nil, nil)
	return err
}
