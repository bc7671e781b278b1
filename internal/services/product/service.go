package product

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"deliverytech/internal/models"
)

// ProductInput carries the writable product fields.
type ProductInput struct {
	RestaurantID int64           `json:"restaurant_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
}

// Validate checks the writable fields. Price must be strictly positive: the
// catalog price is the single source of truth for order pricing.
func (in ProductInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return models.ValidationError{Field: "name", Message: "name is required"}
	}
	if !in.Price.IsPositive() {
		return models.ValidationError{Field: "price", Message: "price must be greater than zero"}
	}
	return nil
}

// Store is the persistence surface the product service needs.
type Store interface {
	Insert(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	SetAvailability(ctx context.Context, id int64, available bool) error
}

// Cache is the read-through cache in front of product lookups.
type Cache interface {
	Get(ctx context.Context, productID int64) (*models.Product, bool)
	Set(ctx context.Context, p *models.Product) error
	Invalidate(ctx context.Context, productID int64) error
}

// RestaurantDirectory resolves the owning restaurant on product creation.
type RestaurantDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.Restaurant, error)
}

// Service implements catalog management and authoritative product lookup.
type Service struct {
	store       Store
	cache       Cache
	restaurants RestaurantDirectory
}

// NewService creates a product service. cache may be nil to disable caching.
func NewService(store Store, cache Cache, restaurants RestaurantDirectory) *Service {
	return &Service{store: store, cache: cache, restaurants: restaurants}
}

// Create adds a product to an existing restaurant's catalog.
func (s *Service) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if in.RestaurantID <= 0 {
		return nil, models.ValidationError{Field: "restaurant_id", Message: "restaurant_id is required"}
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.restaurants.GetByID(ctx, in.RestaurantID); err != nil {
		return nil, err
	}

	p := &models.Product{
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Category:     in.Category,
		Description:  in.Description,
		Price:        in.Price,
		Available:    true,
	}
	if err := s.store.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID resolves a product, serving from cache when possible. This is the
// authoritative price lookup used by order assembly.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	if s.cache != nil {
		if p, ok := s.cache.Get(ctx, id); ok {
			return p, nil
		}
	}

	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, p)
	}
	return p, nil
}

// ListByRestaurant returns a restaurant's catalog.
func (s *Service) ListByRestaurant(ctx context.Context, restaurantID int64) ([]models.Product, error) {
	return s.store.ListByRestaurant(ctx, restaurantID)
}

// Update rewrites a product's fields and drops any cached copy, so the next
// lookup sees the new price.
func (s *Service) Update(ctx context.Context, id int64, in ProductInput) (*models.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p := &models.Product{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price,
	}
	if err := s.store.Update(ctx, p); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, id)
	}
	return p, nil
}

// SetAvailability sets the availability flag and drops any cached copy.
func (s *Service) SetAvailability(ctx context.Context, id int64, available bool) error {
	if err := s.store.SetAvailability(ctx, id, available); err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, id)
	}
	return nil
}
