package services

import "errors"

// Error variables
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("not found")
)
