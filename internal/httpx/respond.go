package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"deliverytech/internal/models"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes an error response, mapping the domain error taxonomy to
// status codes: not-found → 404, validation → 400, anything else → 500.
func WriteError(w http.ResponseWriter, err error, requestID string) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case models.IsNotFound(err):
		statusCode = http.StatusNotFound
		message = err.Error()
	case models.IsValidation(err):
		statusCode = http.StatusBadRequest
		message = err.Error()
	}

	WriteMessage(w, statusCode, message, requestID)
}

// WriteMessage writes a plain error payload with the given status code.
func WriteMessage(w http.ResponseWriter, statusCode int, message, requestID string) {
	WriteJSON(w, statusCode, map[string]interface{}{
		"error":      message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": requestID,
	})
}
