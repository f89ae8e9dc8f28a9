// Package response writes JSON bodies for the REST API.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/dtroode/travelstory-server/internal/apierror"
)

// ErrorBody is the body of every failed request.
type ErrorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes err as {error: true, message} with the status of its kind.
func Error(w http.ResponseWriter, err error) {
	apiErr := apierror.From(err)
	JSON(w, apiErr.HTTPStatus, ErrorBody{Error: true, Message: apiErr.Message})
}
