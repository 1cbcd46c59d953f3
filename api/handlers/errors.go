// Package handlers provides HTTP handlers for the pairscore API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aria-lang/pairscore/pkg/pairscore"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps an error to its HTTP status. Requests that are well formed
// but cannot be scored get 422.
func statusFor(err error) int {
	var conflict *pairscore.AlphabetConflictError
	var undefined *pairscore.UndefinedPercentError
	switch {
	case errors.As(err, &conflict), errors.As(err, &undefined):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
