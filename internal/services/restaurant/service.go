package restaurant

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"deliverytech/internal/models"
)

// RestaurantInput carries the writable restaurant fields.
type RestaurantInput struct {
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Phone           string          `json:"phone"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	DeliveryTimeMin int             `json:"delivery_time_minutes"`
}

// Validate checks the writable fields.
func (in RestaurantInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return models.ValidationError{Field: "name", Message: "name is required"}
	}
	if strings.TrimSpace(in.Category) == "" {
		return models.ValidationError{Field: "category", Message: "category is required"}
	}
	if in.DeliveryFee.IsNegative() {
		return models.ValidationError{Field: "delivery_fee", Message: "delivery_fee must not be negative"}
	}
	if in.DeliveryTimeMin < 0 {
		return models.ValidationError{Field: "delivery_time_minutes", Message: "delivery_time_minutes must not be negative"}
	}
	return nil
}

// Store is the persistence surface the restaurant service needs.
type Store interface {
	Insert(ctx context.Context, rest *models.Restaurant) error
	GetByID(ctx context.Context, id int64) (*models.Restaurant, error)
	List(ctx context.Context, limit, offset int) ([]models.Restaurant, error)
	ListByCategory(ctx context.Context, category string) ([]models.Restaurant, error)
	Update(ctx context.Context, rest *models.Restaurant) error
	ToggleActive(ctx context.Context, id int64) error
}

// Service implements restaurant management.
type Service struct {
	store Store
}

// NewService creates a restaurant service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register creates an active restaurant.
func (s *Service) Register(ctx context.Context, in RestaurantInput) (*models.Restaurant, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	rest := &models.Restaurant{
		Name:            in.Name,
		Category:        in.Category,
		Phone:           in.Phone,
		DeliveryFee:     in.DeliveryFee,
		DeliveryTimeMin: in.DeliveryTimeMin,
		Active:          true,
	}
	if err := s.store.Insert(ctx, rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// Get returns a restaurant by id.
func (s *Service) Get(ctx context.Context, id int64) (*models.Restaurant, error) {
	return s.store.GetByID(ctx, id)
}

// List returns a page of restaurants.
func (s *Service) List(ctx context.Context, page, pageSize int) ([]models.Restaurant, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return s.store.List(ctx, pageSize, (page-1)*pageSize)
}

// ListByCategory returns the restaurants in a category.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]models.Restaurant, error) {
	return s.store.ListByCategory(ctx, category)
}

// Update rewrites a restaurant's fields.
func (s *Service) Update(ctx context.Context, id int64, in RestaurantInput) (*models.Restaurant, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	rest := &models.Restaurant{
		ID:              id,
		Name:            in.Name,
		Category:        in.Category,
		Phone:           in.Phone,
		DeliveryFee:     in.DeliveryFee,
		DeliveryTimeMin: in.DeliveryTimeMin,
	}
	if err := s.store.Update(ctx, rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// ToggleStatus flips the restaurant's active flag.
func (s *Service) ToggleStatus(ctx context.Context, id int64) error {
	return s.store.ToggleActive(ctx, id)
}
