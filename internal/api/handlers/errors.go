package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteDetail writes a JSON error response with a single detail message
func WriteDetail(w http.ResponseWriter, statusCode int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"detail": detail,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// WriteValidationErrors writes a 400 response mapping each invalid field to
// its list of messages
func WriteValidationErrors(w http.ResponseWriter, errs map[string][]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(errs); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}
