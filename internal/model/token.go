package model

import "github.com/google/uuid"

// TokenManager issues and verifies bearer tokens.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ParseAccessToken(token string) (uuid.UUID, error)
}

// PasswordHasher hashes and compares user passwords.
type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Compare(hash []byte, password string) error
}
