package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the failure shape shared by every endpoint. Fallback signals
// the front end to switch to its static constants instead of blocking.
type ErrorBody struct {
	Error    string `json:"error"`
	Fallback bool   `json:"fallback,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload == nil {
		return
	}
	json.NewEncoder(w).Encode(payload)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{Error: message})
}

func ErrorWithFallback(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{Error: message, Fallback: true})
}
