package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/travelstory-server/internal/apierror"
	"github.com/dtroode/travelstory-server/internal/logger"
	"github.com/dtroode/travelstory-server/internal/model"
)

// TokenService issues access tokens and resolves them back to user IDs.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

func (s *TokenService) Issue(_ context.Context, userID uuid.UUID) (string, error) {
	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}
	return access, nil
}

// GetUserID verifies token. Failures are returned as auth API errors
// distinguishing a missing, expired or otherwise invalid token.
func (s *TokenService) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.manager.ParseAccessToken(token)
	switch {
	case err == nil:
		return userID, nil
	case errors.Is(err, model.ErrTokenMissing):
		return uuid.Nil, apierror.NewErrMissingAuthorizationToken()
	case errors.Is(err, model.ErrTokenExpired):
		return uuid.Nil, apierror.NewErrExpiredAuthorizationToken()
	default:
		s.logger.Debug("Token service: rejected token", "error", err.Error())
		return uuid.Nil, apierror.NewErrInvalidAuthorizationToken()
	}
}
