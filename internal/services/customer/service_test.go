package customer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deliverytech/internal/models"
)

type fakeStore struct {
	customers map[int64]*models.Customer
	nextID    int64
	lastLimit int
	lastOff   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{customers: map[int64]*models.Customer{}, nextID: 1}
}

func (f *fakeStore) Insert(_ context.Context, c *models.Customer) error {
	for _, existing := range f.customers {
		if existing.Email == c.Email {
			return models.ValidationError{Field: "email", Message: "email already registered"}
		}
	}
	c.ID = f.nextID
	f.nextID++
	copied := *c
	f.customers[c.ID] = &copied
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*models.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, models.NewNotFound(models.EntityCliente, id)
}

func (f *fakeStore) ListActive(_ context.Context, limit, offset int) ([]models.Customer, error) {
	f.lastLimit = limit
	f.lastOff = offset
	return nil, nil
}

func (f *fakeStore) Update(_ context.Context, c *models.Customer) error {
	if _, ok := f.customers[c.ID]; !ok {
		return models.NewNotFound(models.EntityCliente, c.ID)
	}
	copied := *c
	f.customers[c.ID] = &copied
	return nil
}

func (f *fakeStore) ToggleActive(_ context.Context, id int64) error {
	c, ok := f.customers[id]
	if !ok {
		return models.NewNotFound(models.EntityCliente, id)
	}
	c.Active = !c.Active
	return nil
}

func TestRegister(t *testing.T) {
	svc := NewService(newFakeStore())

	c, err := svc.Register(context.Background(), "Maria Silva", "maria@example.com")
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.True(t, c.Active)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name  string
		cname string
		email string
		field string
	}{
		{"empty name", "", "maria@example.com", "name"},
		{"blank name", "   ", "maria@example.com", "name"},
		{"name too long", strings.Repeat("a", 101), "maria@example.com", "name"},
		{"empty email", "Maria", "", "email"},
		{"email without at", "Maria", "maria.example.com", "email"},
		{"email with trailing at", "Maria", "maria@", "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeStore())

			_, err := svc.Register(context.Background(), tt.cname, tt.email)
			require.Error(t, err)

			var ve models.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.Register(context.Background(), "Maria Silva", "maria@example.com")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Outra Maria", "maria@example.com")
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
}

func TestGetUnknownCustomer(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, "Cliente com ID 42 não encontrado", err.Error())
}

func TestListActivePagination(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	_, err := svc.ListActive(context.Background(), 3, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, store.lastLimit)
	assert.Equal(t, 40, store.lastOff)

	// Out-of-range paging falls back to the first page of ten.
	_, err = svc.ListActive(context.Background(), 0, 500)
	require.NoError(t, err)
	assert.Equal(t, 10, store.lastLimit)
	assert.Equal(t, 0, store.lastOff)
}

func TestToggleStatus(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	c, err := svc.Register(context.Background(), "Maria Silva", "maria@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.ToggleStatus(context.Background(), c.ID))
	got, err := svc.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}
