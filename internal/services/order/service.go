package order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"deliverytech/internal/logger"
	"deliverytech/internal/models"
)

// CustomerDirectory resolves customers referenced by an order.
type CustomerDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
}

// RestaurantDirectory resolves restaurants referenced by an order.
type RestaurantDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.Restaurant, error)
}

// ProductCatalog resolves products and supplies the authoritative unit price.
type ProductCatalog interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// Store persists order aggregates atomically.
type Store interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
}

// EventPublisher announces committed orders to interested consumers.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error
}

// Service implements the order placement and pricing workflow.
type Service struct {
	customers   CustomerDirectory
	restaurants RestaurantDirectory
	catalog     ProductCatalog
	store       Store
	publisher   EventPublisher
	logger      *logger.Logger
}

// NewService creates an order service. publisher may be nil to disable
// event publishing.
func NewService(customers CustomerDirectory, restaurants RestaurantDirectory,
	catalog ProductCatalog, store Store, publisher EventPublisher, log *logger.Logger) *Service {
	return &Service{
		customers:   customers,
		restaurants: restaurants,
		catalog:     catalog,
		store:       store,
		publisher:   publisher,
		logger:      log,
	}
}

// Create runs the full workflow: structural validation, referential
// resolution, line-item assembly with prices pinned from the catalog, atomic
// persistence, and a best-effort order-created event after commit.
//
// Any unresolved customer, restaurant or product aborts the whole attempt;
// no partial order is ever created.
func (s *Service) Create(ctx context.Context, req *models.CreateOrderRequest, requestID string) (*models.Order, error) {
	// Structural validation runs before any catalog lookup.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	customer, err := s.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	restaurant, err := s.restaurants.GetByID(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	order, err := s.assemble(ctx, customer, restaurant, req)
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.Info("order_created", "Order persisted", requestID, map[string]interface{}{
		"order_id":      order.ID,
		"customer_id":   order.CustomerID,
		"restaurant_id": order.RestaurantID,
		"total":         order.Total.String(),
		"items":         len(order.Items),
	})

	s.publishCreated(ctx, order, requestID)

	return order, nil
}

// assemble builds the not-yet-persisted aggregate. Each requested pair is
// resolved independently — duplicate product ids become separate line items —
// and the unit price is snapshotted from the catalog at this instant, never
// re-read afterwards. The total is the exact decimal sum of the subtotals,
// starting from zero.
func (s *Service) assemble(ctx context.Context, customer *models.Customer,
	restaurant *models.Restaurant, req *models.CreateOrderRequest) (*models.Order, error) {

	items := make([]models.OrderItem, 0, len(req.Items))
	total := decimal.Zero

	for _, requested := range req.Items {
		product, err := s.catalog.GetByID(ctx, requested.ProductID)
		if err != nil {
			return nil, err
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(requested.Quantity)))
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    requested.Quantity,
			UnitPrice:   product.Price,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}

	return &models.Order{
		CustomerID:      customer.ID,
		RestaurantID:    restaurant.ID,
		DeliveryAddress: req.DeliveryAddress,
		Total:           total,
		Status:          models.StatusCreated,
		Items:           items,
	}, nil
}

// publishCreated emits the order-created event. The order is already
// committed; a broker failure is logged and never surfaced to the caller.
func (s *Service) publishCreated(ctx context.Context, order *models.Order, requestID string) {
	if s.publisher == nil {
		return
	}

	event := models.OrderCreatedEvent{
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		Total:        order.Total,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}
	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		s.logger.Error("order_event_publish_failed", "Failed to publish order created event",
			requestID, err, map[string]interface{}{"order_id": order.ID})
	}
}

// Get returns the persisted aggregate by id. Repeated reads return the same
// total and line items; nothing is recomputed.
func (s *Service) Get(ctx context.Context, id int64) (*models.Order, error) {
	return s.store.GetByID(ctx, id)
}
