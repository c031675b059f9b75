package handlers

import (
	"encoding/json"
	"net/http"
)

// maxBodyBytes caps request bodies accepted by the JSON handlers.
const maxBodyBytes = 1 << 20

// MessageResponse is the body of every error response and of simple acknowledgements
// swagger:model MessageResponse
type MessageResponse struct {
	// Human readable message
	// default: Internal server error
	Message string `json:"message"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}
