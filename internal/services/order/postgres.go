package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"deliverytech/internal/database"
	"deliverytech/internal/models"
)

const changedBy = "order-service"

// Repository persists order aggregates in PostgreSQL.
type Repository struct {
	db *database.DB
}

// NewRepository creates an order repository.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Create persists the order header, all line items and the initial status
// log row in a single transaction. Either every row commits or none do.
func (r *Repository) Create(ctx context.Context, o *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	addr := o.DeliveryAddress
	err = tx.QueryRow(ctx, database.InsertOrderSQL,
		o.CustomerID, o.RestaurantID,
		addr.Street, addr.Number, addr.Complement, addr.Neighborhood,
		addr.City, addr.State, addr.PostalCode,
		o.Total, o.Status,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err = tx.Exec(ctx, database.InsertOrderItemSQL,
			o.ID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal)
		if err != nil {
			return fmt.Errorf("failed to insert order item %d: %w", item.ProductID, err)
		}
	}

	_, err = tx.Exec(ctx, database.InsertOrderStatusLogSQL, o.ID, o.Status, changedBy)
	if err != nil {
		return fmt.Errorf("failed to insert order status log: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetByID loads the full aggregate: header plus line items with product
// names resolved. Totals come straight from storage, never recomputed.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	addr := &o.DeliveryAddress
	err := r.db.QueryRow(ctx, database.GetOrderByIDSQL, id).
		Scan(&o.ID, &o.CustomerID, &o.RestaurantID,
			&addr.Street, &addr.Number, &addr.Complement, &addr.Neighborhood,
			&addr.City, &addr.State, &addr.PostalCode,
			&o.Total, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound(models.EntityPedido, id)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	rows, err := r.db.Query(ctx, database.GetOrderItemsSQL, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	o.Items = []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity,
			&item.UnitPrice, &item.Subtotal)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &o, nil
}
