package restaurant

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deliverytech/internal/models"
)

type fakeStore struct {
	restaurants map[int64]*models.Restaurant
	nextID      int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{restaurants: map[int64]*models.Restaurant{}, nextID: 1}
}

func (f *fakeStore) Insert(_ context.Context, rest *models.Restaurant) error {
	rest.ID = f.nextID
	f.nextID++
	copied := *rest
	f.restaurants[rest.ID] = &copied
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*models.Restaurant, error) {
	if rest, ok := f.restaurants[id]; ok {
		return rest, nil
	}
	return nil, models.NewNotFound(models.EntityRestaurante, id)
}

func (f *fakeStore) List(_ context.Context, _, _ int) ([]models.Restaurant, error) {
	var out []models.Restaurant
	for _, rest := range f.restaurants {
		out = append(out, *rest)
	}
	return out, nil
}

func (f *fakeStore) ListByCategory(_ context.Context, category string) ([]models.Restaurant, error) {
	var out []models.Restaurant
	for _, rest := range f.restaurants {
		if rest.Category == category {
			out = append(out, *rest)
		}
	}
	return out, nil
}

func (f *fakeStore) Update(_ context.Context, rest *models.Restaurant) error {
	if _, ok := f.restaurants[rest.ID]; !ok {
		return models.NewNotFound(models.EntityRestaurante, rest.ID)
	}
	copied := *rest
	f.restaurants[rest.ID] = &copied
	return nil
}

func (f *fakeStore) ToggleActive(_ context.Context, id int64) error {
	rest, ok := f.restaurants[id]
	if !ok {
		return models.NewNotFound(models.EntityRestaurante, id)
	}
	rest.Active = !rest.Active
	return nil
}

func validInput() RestaurantInput {
	return RestaurantInput{
		Name:            "Pizzaria Central",
		Category:        "Pizza",
		Phone:           "11999998888",
		DeliveryFee:     decimal.RequireFromString("5.00"),
		DeliveryTimeMin: 40,
	}
}

func TestRegister(t *testing.T) {
	svc := NewService(newFakeStore())

	rest, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotZero(t, rest.ID)
	assert.True(t, rest.Active)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RestaurantInput)
		field  string
	}{
		{"missing name", func(in *RestaurantInput) { in.Name = " " }, "name"},
		{"missing category", func(in *RestaurantInput) { in.Category = "" }, "category"},
		{"negative fee", func(in *RestaurantInput) { in.DeliveryFee = decimal.RequireFromString("-1.00") }, "delivery_fee"},
		{"negative delivery time", func(in *RestaurantInput) { in.DeliveryTimeMin = -5 }, "delivery_time_minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeStore())

			in := validInput()
			tt.mutate(&in)

			_, err := svc.Register(context.Background(), in)
			require.Error(t, err)

			var ve models.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestRegisterAllowsFreeDelivery(t *testing.T) {
	svc := NewService(newFakeStore())

	in := validInput()
	in.DeliveryFee = decimal.Zero

	_, err := svc.Register(context.Background(), in)
	assert.NoError(t, err)
}

func TestGetUnknownRestaurant(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.Get(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, "Restaurante com ID 7 não encontrado", err.Error())
}

func TestListByCategory(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	other := validInput()
	other.Name = "Sushi Ya"
	other.Category = "Japonesa"
	_, err = svc.Register(context.Background(), other)
	require.NoError(t, err)

	pizza, err := svc.ListByCategory(context.Background(), "Pizza")
	require.NoError(t, err)
	require.Len(t, pizza, 1)
	assert.Equal(t, "Pizzaria Central", pizza[0].Name)
}

func TestToggleStatus(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	rest, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.ToggleStatus(context.Background(), rest.ID))
	got, err := svc.Get(context.Background(), rest.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}
