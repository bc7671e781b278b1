package restaurant

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"deliverytech/internal/database"
	"deliverytech/internal/models"
)

// Repository persists restaurants in PostgreSQL.
type Repository struct {
	db *database.DB
}

// NewRepository creates a restaurant repository.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Insert stores a new restaurant and fills in its id and creation time.
func (r *Repository) Insert(ctx context.Context, rest *models.Restaurant) error {
	err := r.db.QueryRow(ctx, database.InsertRestaurantSQL,
		rest.Name, rest.Category, rest.Phone, rest.DeliveryFee, rest.DeliveryTimeMin).
		Scan(&rest.ID, &rest.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert restaurant: %w", err)
	}
	rest.Active = true
	return nil
}

// GetByID returns the restaurant or a NotFoundError.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Restaurant, error) {
	var rest models.Restaurant
	err := r.db.QueryRow(ctx, database.GetRestaurantByIDSQL, id).
		Scan(&rest.ID, &rest.Name, &rest.Category, &rest.Phone,
			&rest.DeliveryFee, &rest.DeliveryTimeMin, &rest.Active, &rest.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound(models.EntityRestaurante, id)
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return &rest, nil
}

// List returns a page of restaurants.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]models.Restaurant, error) {
	rows, err := r.db.Query(ctx, database.ListRestaurantsSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	return scanRestaurants(rows)
}

// ListByCategory returns every restaurant in a category.
func (r *Repository) ListByCategory(ctx context.Context, category string) ([]models.Restaurant, error) {
	rows, err := r.db.Query(ctx, database.ListRestaurantsByCategorySQL, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants by category: %w", err)
	}
	defer rows.Close()

	return scanRestaurants(rows)
}

// Update rewrites the restaurant fields, returning the stored row.
func (r *Repository) Update(ctx context.Context, rest *models.Restaurant) error {
	err := r.db.QueryRow(ctx, database.UpdateRestaurantSQL,
		rest.Name, rest.Category, rest.Phone, rest.DeliveryFee, rest.DeliveryTimeMin, rest.ID).
		Scan(&rest.ID, &rest.Name, &rest.Category, &rest.Phone,
			&rest.DeliveryFee, &rest.DeliveryTimeMin, &rest.Active, &rest.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.NewNotFound(models.EntityRestaurante, rest.ID)
		}
		return fmt.Errorf("failed to update restaurant: %w", err)
	}
	return nil
}

// ToggleActive flips the active flag.
func (r *Repository) ToggleActive(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, database.ToggleRestaurantActiveSQL, id)
	if err != nil {
		return fmt.Errorf("failed to toggle restaurant status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFound(models.EntityRestaurante, id)
	}
	return nil
}

func scanRestaurants(rows pgx.Rows) ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	for rows.Next() {
		var rest models.Restaurant
		err := rows.Scan(&rest.ID, &rest.Name, &rest.Category, &rest.Phone,
			&rest.DeliveryFee, &rest.DeliveryTimeMin, &rest.Active, &rest.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}
