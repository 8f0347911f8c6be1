package models

import "github.com/google/uuid"

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"max=99"`
}

// SetQuantityRequest sets an absolute quantity. Zero or less removes the line.
type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"max=99"`
}
