package models

// Ingredient is an inventory item as returned by the backend.
type Ingredient struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// IngredientRequest is the payload for creating or updating an
// ingredient. Only SELLER and ADMIN actors may send it.
type IngredientRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

func NewIngredientRequest(name string, quantity int) (IngredientRequest, error) {
	req := IngredientRequest{Name: name, Quantity: quantity}
	if err := Validate(req); err != nil {
		return IngredientRequest{}, err
	}
	return req, nil
}
