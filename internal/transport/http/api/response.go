package api

import (
	"encoding/json"
	"net/http"
)

// errorBody is the wire shape for every non-2xx response.
type errorBody struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// Fail writes {"error": message} with the given status.
func Fail(w http.ResponseWriter, status int, message string) {
	_ = WriteJSON(w, status, errorBody{Error: message})
}
