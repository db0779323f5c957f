package common

import (
	"encoding/json"
	"math"
	"net/http"
)

// JSON writes the provided value to the response writer as JSON.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Success renders the canonical success envelope.
func Success(w http.ResponseWriter, status int, data any) {
	JSON(w, status, map[string]any{"success": true, "data": data})
}

// Error renders the canonical failure envelope.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{"success": false, "message": message})
}

// ValidationError renders a 422 with per-field failure details. Shape-level
// rejections use this; business-rule rejections go through Error with a 400.
func ValidationError(w http.ResponseWriter, message string, errs map[string][]string) {
	JSON(w, http.StatusUnprocessableEntity, map[string]any{
		"success": false,
		"message": message,
		"errors":  errs,
	})
}

// Round2 rounds a monetary amount to two decimal places. Presentation only:
// internal pricing arithmetic is carried in full precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
