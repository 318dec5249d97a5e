package controllers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/adminjournal/services"
)

// renderJSON writes data as a JSON response
func renderJSON(w http.ResponseWriter, data interface{}) error {
	return renderJSONWithStatus(w, http.StatusOK, data)
}

// renderJSONWithStatus writes data as a JSON response with the given status code
func renderJSONWithStatus(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// renderError writes a JSON error body
func renderError(w http.ResponseWriter, statusCode int, message string) {
	_ = renderJSONWithStatus(w, statusCode, map[string]string{"error": message})
}

// Controllers holds all controller instances
type Controllers struct {
	Journal *JournalController
	Health  *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, pinger Pinger, logger *zap.Logger) *Controllers {
	return &Controllers{
		Journal: NewJournalController(services, logger),
		Health:  NewHealthController(pinger),
	}
}
