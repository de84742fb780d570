package models

import (
	"fmt"
	"strings"
)

// OrderStatus tracks a coffee order through its lifecycle.
type OrderStatus string

const (
	OrderStatusCreated    OrderStatus = "CREATED"
	OrderStatusInProgress OrderStatus = "INPROGRESS"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(s)) {
	case OrderStatusCreated:
		return OrderStatusCreated, nil
	case OrderStatusInProgress:
		return OrderStatusInProgress, nil
	case OrderStatusCompleted:
		return OrderStatusCompleted, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", fmt.Errorf("invalid order status: %s", s)
	}
}

func (s OrderStatus) String() string {
	return string(s)
}

// Order is a coffee order as returned by the backend.
type Order struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"userId"`
	Status        OrderStatus `json:"status"`
	Comment       string      `json:"comment,omitempty"`
	IngredientIDs []int64     `json:"ingredientIds,omitempty"`
}

// CreateOrderRequest is the payload for POST /api/orders.
type CreateOrderRequest struct {
	IngredientIDs []int64 `json:"ingredientIds" validate:"required,min=1"`
	Comment       string  `json:"comment,omitempty"`
}

func NewCreateOrderRequest(ingredientIDs []int64, comment string) (CreateOrderRequest, error) {
	req := CreateOrderRequest{IngredientIDs: ingredientIDs, Comment: comment}
	if err := Validate(req); err != nil {
		return CreateOrderRequest{}, err
	}
	return req, nil
}

// UpdateOrderStatusRequest is the payload for PUT /api/orders/{id}/status.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}

func NewUpdateOrderStatusRequest(status OrderStatus) (UpdateOrderStatusRequest, error) {
	normalized, err := ParseOrderStatus(status.String())
	if err != nil {
		return UpdateOrderStatusRequest{}, err
	}
	req := UpdateOrderStatusRequest{Status: normalized}
	if err := Validate(req); err != nil {
		return UpdateOrderStatusRequest{}, err
	}
	return req, nil
}
