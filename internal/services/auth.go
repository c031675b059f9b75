package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/townlink/internal/hasher"
	"github.com/sbilibin2017/townlink/internal/logger"
	"github.com/sbilibin2017/townlink/internal/models"
	"github.com/sbilibin2017/townlink/internal/repositories"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) (int64, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenGenerator issues bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64, username string) (string, error)
}

type credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	tokens TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, hasher PasswordHasher, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a user and returns its id.
func (svc *AuthService) Register(ctx context.Context, username, password string) (int64, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)

	if err := validateStruct(credentials{Username: username, Password: password}); err != nil {
		log.Warnw("invalid registration input", "err", err)
		return 0, err
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return 0, err
	}
	if user != nil {
		log.Warnw("user already exists", "username", username)
		return 0, ErrDuplicateUsername
	}

	hashedPassword, err := svc.hasher.Hash(password)
	if errors.Is(err, hasher.ErrPasswordTooLong) {
		return 0, ErrInvalidInput
	}
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	userID, err := svc.writer.Save(ctx, username, hashedPassword)
	if errors.Is(err, repositories.ErrUserExists) {
		log.Warnw("user already exists", "username", username)
		return 0, ErrDuplicateUsername
	}
	if err != nil {
		log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	log.Infow("user registered", "user_id", userID, "username", username)
	return userID, nil
}

// Login authenticates a user and returns a token together with the user's id.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
// The username is trimmed the same way Register stores it.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, int64, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)

	if err := validateStruct(credentials{Username: username, Password: password}); err != nil {
		return "", 0, err
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return "", 0, err
	}
	if user == nil || !svc.hasher.Verify(password, user.PasswordHash) {
		log.Warnw("invalid credentials", "username", username)
		return "", 0, ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", 0, err
	}

	return token, user.UserID, nil
}

// SeedUser registers the account unless the username is already taken.
func (svc *AuthService) SeedUser(ctx context.Context, username, password string) error {
	_, err := svc.Register(ctx, username, password)
	if errors.Is(err, ErrDuplicateUsername) {
		return nil
	}
	return err
}
