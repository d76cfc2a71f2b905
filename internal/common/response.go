package common

import (
	"encoding/json"
	"net/http"
)

// SubmissionResult is the envelope returned by every inquiry endpoint.
type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JSON writes the provided value to the response writer as JSON.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Result renders the inquiry submission envelope.
func Result(w http.ResponseWriter, status int, success bool, message string) {
	JSON(w, status, SubmissionResult{Success: success, Message: message})
}

// JSONError renders an error response using the canonical error shape.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
