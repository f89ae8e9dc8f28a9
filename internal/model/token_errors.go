package model

import "errors"

var (
	ErrTokenMissing = errors.New("authorization token is missing")
	ErrTokenInvalid = errors.New("authorization token is invalid")
	ErrTokenExpired = errors.New("authorization token expired")
)
