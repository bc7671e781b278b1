package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() Address {
	return Address{
		Street:     "Rua das Flores",
		Number:     "123",
		City:       "São Paulo",
		State:      "SP",
		PostalCode: "01001-000",
	}
}

func TestCreateOrderRequestValidate(t *testing.T) {
	valid := func() CreateOrderRequest {
		return CreateOrderRequest{
			CustomerID:      1,
			RestaurantID:    2,
			DeliveryAddress: validAddress(),
			Items:           []OrderItemRequest{{ProductID: 10, Quantity: 1}},
		}
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*CreateOrderRequest)
		field  string
	}{
		{"missing customer", func(r *CreateOrderRequest) { r.CustomerID = 0 }, "customer_id"},
		{"missing restaurant", func(r *CreateOrderRequest) { r.RestaurantID = 0 }, "restaurant_id"},
		{"empty items", func(r *CreateOrderRequest) { r.Items = nil }, "items"},
		{"zero quantity", func(r *CreateOrderRequest) { r.Items[0].Quantity = 0 }, "items[0].quantity"},
		{"negative quantity", func(r *CreateOrderRequest) { r.Items[0].Quantity = -2 }, "items[0].quantity"},
		{"missing product id", func(r *CreateOrderRequest) { r.Items[0].ProductID = 0 }, "items[0].product_id"},
		{"missing street", func(r *CreateOrderRequest) { r.DeliveryAddress.Street = "  " }, "delivery_address.street"},
		{"missing postal code", func(r *CreateOrderRequest) { r.DeliveryAddress.PostalCode = "" }, "delivery_address.postal_code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestCreateOrderRequestValidateReportsSecondItem(t *testing.T) {
	req := CreateOrderRequest{
		CustomerID:      1,
		RestaurantID:    2,
		DeliveryAddress: validAddress(),
		Items: []OrderItemRequest{
			{ProductID: 10, Quantity: 1},
			{ProductID: 10, Quantity: 0},
		},
	}

	err := req.Validate()
	require.Error(t, err)

	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "items[1].quantity", ve.Field)
}
