package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coffeehouse/e2e/internal/models"
)

// IngredientsClient maps inventory operations to /api/ingredients.
type IngredientsClient struct {
	http *Client
}

func NewIngredientsClient(baseURL, token string) *IngredientsClient {
	return &IngredientsClient{http: New(baseURL, WithToken(token))}
}

func (c *IngredientsClient) List(ctx context.Context) ([]models.Ingredient, error) {
	return call[[]models.Ingredient](ctx, c.http, http.MethodGet, "/api/ingredients", nil, nil)
}

// ListAvailable returns only ingredients with quantity > 0.
func (c *IngredientsClient) ListAvailable(ctx context.Context) ([]models.Ingredient, error) {
	return call[[]models.Ingredient](ctx, c.http, http.MethodGet, "/api/ingredients/available", nil, nil)
}

func (c *IngredientsClient) Get(ctx context.Context, id int64) (models.Ingredient, error) {
	return call[models.Ingredient](ctx, c.http, http.MethodGet, fmt.Sprintf("/api/ingredients/%d", id), nil, nil)
}

// Create adds an ingredient. SELLER/ADMIN only.
func (c *IngredientsClient) Create(ctx context.Context, req models.IngredientRequest) (models.Ingredient, error) {
	return call[models.Ingredient](ctx, c.http, http.MethodPost, "/api/ingredients", nil, req)
}

func (c *IngredientsClient) Update(ctx context.Context, id int64, req models.IngredientRequest) (models.Ingredient, error) {
	return call[models.Ingredient](ctx, c.http, http.MethodPut, fmt.Sprintf("/api/ingredients/%d", id), nil, req)
}

func (c *IngredientsClient) Delete(ctx context.Context, id int64) error {
	_, err := callRaw(ctx, c.http, http.MethodDelete, fmt.Sprintf("/api/ingredients/%d", id), nil, nil)
	return err
}
