package restaurant

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"deliverytech/internal/httpx"
	"deliverytech/internal/logger"
)

// Handler exposes restaurant endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a restaurant handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Register mounts the restaurant routes.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/restaurants", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/restaurants", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/restaurants/category/{category}", h.ListByCategory).Methods(http.MethodGet)
	r.HandleFunc("/api/restaurants/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/restaurants/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/restaurants/{id}/status", h.ToggleStatus).Methods(http.MethodPatch)
}

// Create handles POST /api/restaurants.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	var in RestaurantInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	rest, err := h.service.Register(r.Context(), in)
	if err != nil {
		h.logger.Error("restaurant_create_failed", "Failed to register restaurant", requestID, err, nil)
		httpx.WriteError(w, err, requestID)
		return
	}

	h.logger.Info("restaurant_created", "Restaurant registered", requestID, map[string]interface{}{
		"restaurant_id": rest.ID,
	})
	httpx.WriteJSON(w, http.StatusCreated, rest)
}

// List handles GET /api/restaurants.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	restaurants, err := h.service.List(r.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("restaurant_list_failed", "Failed to list restaurants", requestID, err, nil)
		httpx.WriteError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, restaurants)
}

// ListByCategory handles GET /api/restaurants/category/{category}.
func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	restaurants, err := h.service.ListByCategory(r.Context(), mux.Vars(r)["category"])
	if err != nil {
		httpx.WriteError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, restaurants)
}

// Get handles GET /api/restaurants/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid restaurant id", requestID)
		return
	}

	rest, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rest)
}

// Update handles PUT /api/restaurants/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid restaurant id", requestID)
		return
	}

	var in RestaurantInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	rest, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		httpx.WriteError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rest)
}

// ToggleStatus handles PATCH /api/restaurants/{id}/status.
func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid restaurant id", requestID)
		return
	}

	if err := h.service.ToggleStatus(r.Context(), id); err != nil {
		httpx.WriteError(w, err, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
