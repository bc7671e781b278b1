package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a registered platform user. Customers are never hard-deleted,
// only toggled inactive.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Restaurant owns a product catalog. Delivery fee and time are menu metadata
// and take no part in order totals.
type Restaurant struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Phone           string          `json:"phone"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	DeliveryTimeMin int             `json:"delivery_time_minutes"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Product belongs to exactly one restaurant. Its price is the single source
// of truth for order pricing; orders never accept a client-supplied price.
type Product struct {
	ID           int64           `json:"id"`
	RestaurantID int64           `json:"restaurant_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Available    bool            `json:"available"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Address is the structured delivery address attached to an order.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
}

// Validate checks the required address fields.
func (a Address) Validate() error {
	required := []struct {
		field, value string
	}{
		{"street", a.Street},
		{"number", a.Number},
		{"city", a.City},
		{"state", a.State},
		{"postal_code", a.PostalCode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return ValidationError{
				Field:   "delivery_address." + r.field,
				Message: r.field + " is required",
			}
		}
	}
	return nil
}
