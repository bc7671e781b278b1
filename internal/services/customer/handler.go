package customer

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"deliverytech/internal/httpx"
	"deliverytech/internal/logger"
)

// Handler exposes customer endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a customer handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Register mounts the customer routes.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/customers", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/customers", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/customers/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/customers/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/customers/{id}/status", h.ToggleStatus).Methods(http.MethodPatch)
}

type customerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Create handles POST /api/customers.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	c, err := h.service.Register(r.Context(), req.Name, req.Email)
	if err != nil {
		h.logger.Error("customer_create_failed", "Failed to register customer", requestID, err, nil)
		httpx.WriteError(w, err, requestID)
		return
	}

	h.logger.Info("customer_created", "Customer registered", requestID, map[string]interface{}{
		"customer_id": c.ID,
	})
	httpx.WriteJSON(w, http.StatusCreated, c)
}

// List handles GET /api/customers with page/page_size query parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	customers, err := h.service.ListActive(r.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("customer_list_failed", "Failed to list customers", requestID, err, nil)
		httpx.WriteError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, customers)
}

// Get handles GET /api/customers/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid customer id", requestID)
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, c)
}

// Update handles PUT /api/customers/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid customer id", requestID)
		return
	}

	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	c, err := h.service.Update(r.Context(), id, req.Name, req.Email)
	if err != nil {
		httpx.WriteError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, c)
}

// ToggleStatus handles PATCH /api/customers/{id}/status.
func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid customer id", requestID)
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
