package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Order is the order aggregate: header plus all of its line items, always
// read and written as one unit. Total is computed from the items and never
// accepted from the caller.
type Order struct {
	ID              int64           `json:"id"`
	CustomerID      int64           `json:"customer_id"`
	RestaurantID    int64           `json:"restaurant_id"`
	DeliveryAddress Address         `json:"delivery_address"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	Items           []OrderItem     `json:"items"`
}

// OrderItem is an immutable line item. UnitPrice is the product's price
// pinned at order-creation time; later catalog changes never touch it.
type OrderItem struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CreateOrderRequest is the inbound payload for order creation. Prices are
// deliberately absent: they are resolved from the catalog.
type CreateOrderRequest struct {
	CustomerID      int64              `json:"customer_id"`
	RestaurantID    int64              `json:"restaurant_id"`
	DeliveryAddress Address            `json:"delivery_address"`
	Items           []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested (product, quantity) pair. Duplicate
// product ids are kept as separate line items.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Validate checks the request structure. It runs before any catalog lookup
// or persistence; an empty item list never reaches the catalog.
func (r *CreateOrderRequest) Validate() error {
	if r.CustomerID <= 0 {
		return ValidationError{Field: "customer_id", Message: "customer_id is required"}
	}
	if r.RestaurantID <= 0 {
		return ValidationError{Field: "restaurant_id", Message: "restaurant_id is required"}
	}
	if err := r.DeliveryAddress.Validate(); err != nil {
		return err
	}
	if len(r.Items) == 0 {
		return ValidationError{Field: "items", Message: "order must contain at least one item"}
	}
	for i, item := range r.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		if item.ProductID <= 0 {
			return ValidationError{Field: prefix + ".product_id", Message: "product_id is required"}
		}
		if item.Quantity < 1 {
			return ValidationError{Field: prefix + ".quantity", Message: "quantity must be at least 1"}
		}
	}
	return nil
}

// OrderCreatedEvent is the message published after an order commits.
type OrderCreatedEvent struct {
	OrderID      int64           `json:"order_id"`
	CustomerID   int64           `json:"customer_id"`
	RestaurantID int64           `json:"restaurant_id"`
	Total        decimal.Decimal `json:"total"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}
