package models

import "time"

// Order references a single product. UserID is always taken from the
// authenticated caller and Price is a snapshot of the product price at
// creation time; neither is ever client-supplied.
type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateOrderRequest struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// Only the quantity of an order can change after creation. The stored
// price is never recomputed.
type UpdateOrderRequest struct {
	Quantity *int `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

// OrderDetail is the get/update response payload: the order with its
// referenced product joined in. Product is null when the product has been
// deleted since the order was placed.
type OrderDetail struct {
	Order   *Order   `json:"order"`
	Product *Product `json:"product"`
}
