package order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"deliverytech/internal/httpx"
	"deliverytech/internal/logger"
	"deliverytech/internal/models"
)

// Handler exposes the order endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates an order handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Register mounts the order routes.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/orders", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/orders/{id}", h.Get).Methods(http.MethodGet)
}

// Create handles POST /api/orders.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	var req models.CreateOrderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	order, err := h.service.Create(ctx, &req, requestID)
	if err != nil {
		h.logger.Error("order_creation_failed", "Failed to create order", requestID, err, map[string]interface{}{
			"customer_id":   req.CustomerID,
			"restaurant_id": req.RestaurantID,
		})
		httpx.WriteError(w, err, requestID)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/orders/%d", order.ID))
	httpx.WriteJSON(w, http.StatusCreated, order)
}

// Get handles GET /api/orders/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid order id", requestID)
		return
	}

	order, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, order)
}
