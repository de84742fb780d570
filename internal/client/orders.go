package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coffeehouse/e2e/internal/models"
)

// OrdersClient maps order operations to /api/orders endpoints.
type OrdersClient struct {
	http *Client
}

func NewOrdersClient(baseURL, token string) *OrdersClient {
	return &OrdersClient{http: New(baseURL, WithToken(token))}
}

func (c *OrdersClient) Create(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	return call[models.Order](ctx, c.http, http.MethodPost, "/api/orders", nil, req)
}

func (c *OrdersClient) Get(ctx context.Context, id int64) (models.Order, error) {
	return call[models.Order](ctx, c.http, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, nil)
}

func (c *OrdersClient) List(ctx context.Context, params *models.PageParams) (models.Page[models.Order], error) {
	return call[models.Page[models.Order]](ctx, c.http, http.MethodGet, "/api/orders", pageQuery(params), nil)
}

// ListPending returns orders still waiting for a seller to pick up.
func (c *OrdersClient) ListPending(ctx context.Context, params *models.PageParams) (models.Page[models.Order], error) {
	return call[models.Page[models.Order]](ctx, c.http, http.MethodGet, "/api/orders/pending", pageQuery(params), nil)
}

// UpdateStatus moves an order through its lifecycle. SELLER/ADMIN only.
func (c *OrdersClient) UpdateStatus(ctx context.Context, id int64, req models.UpdateOrderStatusRequest) (models.Order, error) {
	return call[models.Order](ctx, c.http, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", id), nil, req)
}
