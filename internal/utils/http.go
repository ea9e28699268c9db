package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jeremy-dai/hi-time-sub000/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// It sets "Content-Type: application/json". If marshaling fails it responds
// with 500 Internal Server Error and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.SettingsEnvelope{Settings: s}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a {"error": message} body with statusCode.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
