package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deliverytech/internal/logger"
	"deliverytech/internal/models"
)

func newTestRouter(f *fixture) *mux.Router {
	router := mux.NewRouter()
	NewHandler(f.service, logger.New("test")).Register(router)
	return router
}

func TestCreateOrderEndpoint(t *testing.T) {
	f := newFixture()
	router := newTestRouter(f)

	body := `{
		"customer_id": 1,
		"restaurant_id": 10,
		"delivery_address": {
			"street": "Rua das Flores",
			"number": "123",
			"city": "São Paulo",
			"state": "SP",
			"postal_code": "01001-000"
		},
		"items": [
			{"product_id": 100, "quantity": 2},
			{"product_id": 101, "quantity": 1}
		]
	}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/api/orders/1", rec.Header().Get("Location"))

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "60.5", order.Total.String())
	assert.Equal(t, models.StatusCreated, order.Status)
	assert.Len(t, order.Items, 2)
}

func TestCreateOrderEndpointUnknownProduct(t *testing.T) {
	f := newFixture()
	router := newTestRouter(f)

	body := `{
		"customer_id": 1,
		"restaurant_id": 10,
		"delivery_address": {
			"street": "Rua das Flores",
			"number": "123",
			"city": "São Paulo",
			"state": "SP",
			"postal_code": "01001-000"
		},
		"items": [{"product_id": 999, "quantity": 1}]
	}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Produto com ID 999 não encontrado", resp["error"])
}

func TestCreateOrderEndpointEmptyItems(t *testing.T) {
	f := newFixture()
	router := newTestRouter(f)

	body := `{
		"customer_id": 1,
		"restaurant_id": 10,
		"delivery_address": {
			"street": "Rua das Flores",
			"number": "123",
			"city": "São Paulo",
			"state": "SP",
			"postal_code": "01001-000"
		},
		"items": []
	}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, f.catalog.calls)
}

func TestCreateOrderEndpointRejectsUnknownFields(t *testing.T) {
	f := newFixture()
	router := newTestRouter(f)

	body := `{"customer_id": 1, "restaurant_id": 10, "total": "1.00", "items": []}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.store.orders)
}

func TestGetOrderEndpoint(t *testing.T) {
	f := newFixture()
	router := newTestRouter(f)

	created, err := f.service.Create(context.Background(), validRequest(), "req-1")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, created.ID, order.ID)
	assert.True(t, created.Total.Equal(order.Total))
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	f := newFixture()
	router := newTestRouter(f)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderEndpointBadID(t *testing.T) {
	f := newFixture()
	router := newTestRouter(f)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
