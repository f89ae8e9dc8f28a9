package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/travelstory-server/internal/api/rest/response"
	"github.com/dtroode/travelstory-server/internal/apierror"
	"github.com/dtroode/travelstory-server/internal/model"
)

func handleError(w http.ResponseWriter, err error) {
	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		response.Error(w, apiErr)
	case errors.Is(err, model.ErrNotFound):
		response.Error(w, apierror.NewErrStoryNotFound())
	default:
		response.Error(w, apierror.NewErrUpstream(err))
	}
}
