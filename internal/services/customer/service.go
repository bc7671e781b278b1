package customer

import (
	"context"
	"strings"

	"deliverytech/internal/models"
)

// Store is the persistence surface the customer service needs.
type Store interface {
	Insert(ctx context.Context, c *models.Customer) error
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	ListActive(ctx context.Context, limit, offset int) ([]models.Customer, error)
	Update(ctx context.Context, c *models.Customer) error
	ToggleActive(ctx context.Context, id int64) error
}

// Service implements customer registration and lookup.
type Service struct {
	store Store
}

// NewService creates a customer service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register creates an active customer.
func (s *Service) Register(ctx context.Context, name, email string) (*models.Customer, error) {
	if err := validate(name, email); err != nil {
		return nil, err
	}

	c := &models.Customer{Name: name, Email: email, Active: true}
	if err := s.store.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns a customer by id.
func (s *Service) Get(ctx context.Context, id int64) (*models.Customer, error) {
	return s.store.GetByID(ctx, id)
}

// ListActive returns a page of active customers.
func (s *Service) ListActive(ctx context.Context, page, pageSize int) ([]models.Customer, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return s.store.ListActive(ctx, pageSize, (page-1)*pageSize)
}

// Update rewrites a customer's name and email.
func (s *Service) Update(ctx context.Context, id int64, name, email string) (*models.Customer, error) {
	if err := validate(name, email); err != nil {
		return nil, err
	}

	c := &models.Customer{ID: id, Name: name, Email: email}
	if err := s.store.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ToggleStatus flips the customer's active flag.
func (s *Service) ToggleStatus(ctx context.Context, id int64) error {
	return s.store.ToggleActive(ctx, id)
}

func validate(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return models.ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) > 100 {
		return models.ValidationError{Field: "name", Message: "name must not exceed 100 characters"}
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return models.ValidationError{Field: "email", Message: "email is required"}
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return models.ValidationError{Field: "email", Message: "email is invalid"}
	}
	return nil
}
