package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/travelstory-server/internal/apierror"
	"github.com/dtroode/travelstory-server/internal/logger"
	"github.com/dtroode/travelstory-server/internal/model"
	"github.com/dtroode/travelstory-server/internal/password"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

const maxPasswordBytes = 72

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
	now          func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: NewTokenService(tokenManager, logger),
		logger:       logger,
		now:          time.Now,
	}
}

// Register creates an account and signs the new user in.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.Session, error) {
	fullName := strings.TrimSpace(params.FullName)
	email := normalizeEmail(params.Email)

	if fullName == "" || email == "" || params.Password == "" {
		return model.Session{}, apierror.NewErrAllFieldsRequired()
	}
	if !emailPattern.MatchString(email) {
		return model.Session{}, apierror.NewErrValidation("Please enter a valid email address")
	}
	// bcrypt only hashes the first 72 bytes and refuses longer input.
	if len(params.Password) > maxPasswordBytes {
		return model.Session{}, apierror.NewErrValidation("Password must be at most %d bytes", maxPasswordBytes)
	}

	a.logger.Debug("Auth service: starting user registration", "email", email)

	// The unique index on email catches registrations racing past this check.
	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: user already exists", "email", email)
		return model.Session{}, apierror.NewErrEmailIsTaken()
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	})
	if errors.Is(err, model.ErrConflict) {
		return model.Session{}, apierror.NewErrEmailIsTaken()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"user_id", user.ID,
		"email", email)

	return model.Session{AccessToken: token, User: user.Profile()}, nil
}

// Login verifies credentials. An unknown email and a wrong password produce
// the same error.
func (a *Auth) Login(ctx context.Context, email, pass string) (model.Session, error) {
	email = normalizeEmail(email)
	if email == "" || pass == "" {
		return model.Session{}, apierror.NewErrValidation("Email and password are required")
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown email", "email", email)
		return model.Session{}, apierror.NewErrInvalidCredentials()
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	err = a.hasher.Compare(user.PasswordHash, pass)
	if errors.Is(err, password.ErrMismatch) {
		a.logger.Info("Auth service: wrong password", "user_id", user.ID)
		return model.Session{}, apierror.NewErrInvalidCredentials()
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed successfully", "user_id", user.ID)

	return model.Session{AccessToken: token, User: user.Profile()}, nil
}

// GetCurrentUser returns the public profile of the user.
func (a *Auth) GetCurrentUser(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, apierror.NewErrUserNotFound()
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user.Profile(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
