package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user with authentication material.
type User struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Profile is the public part of a user, safe to return to clients.
type Profile struct {
	ID        uuid.UUID `json:"_id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedOn time.Time `json:"createdOn"`
}

// Profile strips authentication material from the user.
func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedOn: u.CreatedAt,
	}
}
