package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"deliverytech/internal/database"
	"deliverytech/internal/models"
)

// Repository persists customers in PostgreSQL.
type Repository struct {
	db *database.DB
}

// NewRepository creates a customer repository.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Insert stores a new customer and fills in its id and creation time.
func (r *Repository) Insert(ctx context.Context, c *models.Customer) error {
	err := r.db.QueryRow(ctx, database.InsertCustomerSQL, c.Name, c.Email).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ValidationError{Field: "email", Message: "email already registered"}
		}
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	c.Active = true
	return nil
}

// GetByID returns the customer or a NotFoundError.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	var c models.Customer
	err := r.db.QueryRow(ctx, database.GetCustomerByIDSQL, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Active, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound(models.EntityCliente, id)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &c, nil
}

// ListActive returns a page of active customers.
func (r *Repository) ListActive(ctx context.Context, limit, offset int) ([]models.Customer, error) {
	rows, err := r.db.Query(ctx, database.ListActiveCustomersSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Update rewrites name and email, returning the stored row.
func (r *Repository) Update(ctx context.Context, c *models.Customer) error {
	err := r.db.QueryRow(ctx, database.UpdateCustomerSQL, c.Name, c.Email, c.ID).
		Scan(&c.ID, &c.Name, &c.Email, &c.Active, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.NewNotFound(models.EntityCliente, c.ID)
		}
		if isUniqueViolation(err) {
			return models.ValidationError{Field: "email", Message: "email already registered"}
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

// ToggleActive flips the active flag. Customers are never hard-deleted.
func (r *Repository) ToggleActive(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, database.ToggleCustomerActiveSQL, id)
	if err != nil {
		return fmt.Errorf("failed to toggle customer status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFound(models.EntityCliente, id)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
