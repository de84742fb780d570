package actor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coffeehouse/e2e/internal/client"
	"github.com/coffeehouse/e2e/internal/models"
)

// IngredientSet provisions ingredients through a seller-privileged
// client and remembers their identifiers so Cleanup can remove exactly
// what was created, even if a scenario mutated the records meanwhile.
type IngredientSet struct {
	api     *client.IngredientsClient
	created []int64
}

func NewIngredientSet(api *client.IngredientsClient) *IngredientSet {
	return &IngredientSet{api: api}
}

// Provision creates count ingredients with generated unique names and
// the given quantity, returning their identifiers in creation order.
// IDs of ingredients created before a mid-loop failure stay recorded,
// so a deferred Cleanup still removes them.
func (s *IngredientSet) Provision(ctx context.Context, count, quantity int) ([]int64, error) {
	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		name := "ingredient-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
		req, err := models.NewIngredientRequest(name, quantity)
		if err != nil {
			return ids, err
		}

		ingredient, err := s.api.Create(ctx, req)
		if err != nil {
			return ids, fmt.Errorf("creating ingredient %s: %w", name, err)
		}
		ids = append(ids, ingredient.ID)
		s.created = append(s.created, ingredient.ID)
	}
	return ids, nil
}

// Created returns every identifier provisioned so far, in order.
func (s *IngredientSet) Created() []int64 {
	out := make([]int64, len(s.created))
	copy(out, s.created)
	return out
}

// Cleanup deletes the recorded identifiers. Deletion targets IDs, not
// current state; failures are collected so one missing record does not
// strand the rest. IDs whose deletion failed stay recorded, keeping
// them reachable by a later attempt.
func (s *IngredientSet) Cleanup(ctx context.Context) error {
	var errs []error
	var remaining []int64
	for _, id := range s.created {
		if err := s.api.Delete(ctx, id); err != nil {
			zap.S().Warnw("failed to delete ingredient", "id", id, "error", err)
			errs = append(errs, err)
			remaining = append(remaining, id)
		}
	}
	s.created = remaining
	return errors.Join(errs...)
}
