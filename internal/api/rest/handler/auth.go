package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/travelstory-server/internal/api/rest/response"
	"github.com/dtroode/travelstory-server/internal/apierror"
	"github.com/dtroode/travelstory-server/internal/logger"
	"github.com/dtroode/travelstory-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.Session, error)
	Login(ctx context.Context, email, password string) (model.Session, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (model.Profile, error)
}

type userSummary struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type sessionResponse struct {
	Error       bool        `json:"error"`
	Message     string      `json:"message"`
	AccessToken string      `json:"accessToken"`
	User        userSummary `json:"user"`
}

type userResponse struct {
	User    model.Profile `json:"user"`
	Message string        `json:"message"`
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// CreateAccount registers a user and returns an access token.
func (h *Auth) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	session, err := h.authService.Register(r.Context(), model.RegisterParams{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Info("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, newSessionResponse(session, "Account created successfully"))
}

// Login authenticates a user by email and password.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, newSessionResponse(session, "Login successful"))
}

// GetUser returns the profile of the authenticated user.
func (h *Auth) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, apierror.NewErrMissingAuthorizationToken())
		return
	}

	profile, err := h.authService.GetCurrentUser(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, userResponse{User: profile, Message: ""})
}

func newSessionResponse(session model.Session, message string) sessionResponse {
	return sessionResponse{
		Error:       false,
		Message:     message,
		AccessToken: session.AccessToken,
		User: userSummary{
			FullName: session.User.FullName,
			Email:    session.User.Email,
		},
	}
}
