package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/townlink/internal/models"
)

// ErrUserExists is returned by Save when the username is already taken.
var ErrUserExists = errors.New("user already exists")

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with exactly this username, or nil when there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`
	return r.get(ctx, query, username)
}

// GetByID returns the user with the given id, or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	return r.get(ctx, query, userID)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logQuery(ctx, query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user and returns its generated id.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO users (username, password_hash, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id
	`

	var userID int64
	err := r.db.GetContext(ctx, &userID, query, username, passwordHash)

	// password hash is never logged
	logQuery(ctx, query, []any{username}, userID, err)

	if isPgError(err, pgUniqueViolation) {
		return 0, ErrUserExists
	}
	if err != nil {
		return 0, err
	}
	return userID, nil
}
