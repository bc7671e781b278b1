package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"deliverytech/internal/database"
	"deliverytech/internal/models"
)

// Repository persists products in PostgreSQL.
type Repository struct {
	db *database.DB
}

// NewRepository creates a product repository.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Insert stores a new product and fills in its id and creation time.
func (r *Repository) Insert(ctx context.Context, p *models.Product) error {
	err := r.db.QueryRow(ctx, database.InsertProductSQL,
		p.RestaurantID, p.Name, p.Category, p.Description, p.Price).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	p.Available = true
	return nil
}

// GetByID returns the product or a NotFoundError.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRow(ctx, database.GetProductByIDSQL, id).
		Scan(&p.ID, &p.RestaurantID, &p.Name, &p.Category, &p.Description,
			&p.Price, &p.Available, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound(models.EntityProduto, id)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

// ListByRestaurant returns every product of a restaurant.
func (r *Repository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]models.Product, error) {
	rows, err := r.db.Query(ctx, database.ListProductsByRestaurantSQL, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		err := rows.Scan(&p.ID, &p.RestaurantID, &p.Name, &p.Category, &p.Description,
			&p.Price, &p.Available, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Update rewrites the product fields, returning the stored row.
func (r *Repository) Update(ctx context.Context, p *models.Product) error {
	err := r.db.QueryRow(ctx, database.UpdateProductSQL,
		p.Name, p.Category, p.Description, p.Price, p.ID).
		Scan(&p.ID, &p.RestaurantID, &p.Name, &p.Category, &p.Description,
			&p.Price, &p.Available, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.NewNotFound(models.EntityProduto, p.ID)
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// SetAvailability sets the availability flag.
func (r *Repository) SetAvailability(ctx context.Context, id int64, available bool) error {
	tag, err := r.db.Pool.Exec(ctx, database.SetProductAvailabilitySQL, available, id)
	if err != nil {
		return fmt.Errorf("failed to set product availability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFound(models.EntityProduto, id)
	}
	return nil
}
