package product

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"deliverytech/internal/httpx"
	"deliverytech/internal/logger"
)

// Handler exposes product catalog endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a product handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Register mounts the product routes.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/products", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/products/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/products/{id}/availability", h.SetAvailability).Methods(http.MethodPatch)
	r.HandleFunc("/api/restaurants/{restaurantId}/products", h.ListByRestaurant).Methods(http.MethodGet)
}

// Create handles POST /api/products.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	var in ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	p, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.logger.Error("product_create_failed", "Failed to create product", requestID, err, nil)
		httpx.WriteError(w, err, requestID)
		return
	}

	h.logger.Info("product_created", "Product added to catalog", requestID, map[string]interface{}{
		"product_id":    p.ID,
		"restaurant_id": p.RestaurantID,
	})
	httpx.WriteJSON(w, http.StatusCreated, p)
}

// Get handles GET /api/products/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid product id", requestID)
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, p)
}

// ListByRestaurant handles GET /api/restaurants/{restaurantId}/products.
func (h *Handler) ListByRestaurant(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid restaurant id", requestID)
		return
	}

	products, err := h.service.ListByRestaurant(r.Context(), restaurantID)
	if err != nil {
		httpx.WriteError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, products)
}

// Update handles PUT /api/products/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid product id", requestID)
		return
	}

	var in ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	p, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		httpx.WriteError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, p)
}

// SetAvailability handles PATCH /api/products/{id}/availability?available=.
func (h *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid product id", requestID)
		return
	}

	available, err := strconv.ParseBool(r.URL.Query().Get("available"))
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Query parameter 'available' must be true or false", requestID)
		return
	}

	if err := h.service.SetAvailability(r.Context(), id, available); err != nil {
		httpx.WriteError(w, err, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
