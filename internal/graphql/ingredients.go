package graphql

import (
	"context"

	"github.com/coffeehouse/e2e/internal/models"
)

// IngredientsService drives inventory reads through GraphQL.
type IngredientsService struct {
	client *Client
}

func NewIngredientsService(client *Client) *IngredientsService {
	return &IngredientsService{client: client}
}

func (s *IngredientsService) Ingredients(ctx context.Context) ([]models.Ingredient, error) {
	return execute[[]models.Ingredient](ctx, s.client, "ingredients", "ingredients", nil)
}
