package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/travelstory-server/internal/api/rest/response"
	"github.com/dtroode/travelstory-server/internal/apierror"
	"github.com/dtroode/travelstory-server/internal/logger"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Health handles the liveness endpoint.
type Health struct {
	db     HealthChecker
	logger *logger.Logger
}

func NewHealth(db HealthChecker, logger *logger.Logger) *Health {
	return &Health{db: db, logger: logger}
}

func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error("Health handler: database unavailable", "error", err.Error())
		handleError(w, apierror.NewErrUpstream(err))
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
