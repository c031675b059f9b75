package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/townlink/internal/models"
)

const businessColumns = `id, user_id, name, category, location, description, phone, email,
		website, hours, image, latitude, longitude, rating`

// BusinessReadRepository handles business read operations
type BusinessReadRepository struct {
	db *sqlx.DB
}

func NewBusinessReadRepository(db *sqlx.DB) *BusinessReadRepository {
	return &BusinessReadRepository{db: db}
}

// List returns every business in insertion order.
func (r *BusinessReadRepository) List(ctx context.Context) ([]models.BusinessDB, error) {
	const query = `SELECT ` + businessColumns + ` FROM businesses ORDER BY id`

	businesses := []models.BusinessDB{}
	err := r.db.SelectContext(ctx, &businesses, query)

	logQuery(ctx, query, nil, len(businesses), err)

	if err != nil {
		return nil, err
	}
	return businesses, nil
}

// GetByID returns a business, or nil when it does not exist.
func (r *BusinessReadRepository) GetByID(ctx context.Context, businessID int64) (*models.BusinessDB, error) {
	const query = `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	var business models.BusinessDB
	err := r.db.GetContext(ctx, &business, query, businessID)

	logQuery(ctx, query, []any{businessID}, business.BusinessID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// BusinessWriteRepository handles business write operations
type BusinessWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBusinessWriteRepository(db *sqlx.DB, txGetter TxGetter) *BusinessWriteRepository {
	return &BusinessWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a business and returns its generated id. The rating always starts at 0.
func (r *BusinessWriteRepository) Save(ctx context.Context, business *models.BusinessDB) (int64, error) {
	const query = `
		INSERT INTO businesses (user_id, name, category, location, description, phone, email,
			website, hours, image, latitude, longitude, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0)
		RETURNING id
	`
	args := []any{
		business.UserID, business.Name, business.Category, business.Location, business.Description,
		business.Phone, business.Email, business.Website, business.Hours, business.Image,
		business.Latitude, business.Longitude,
	}

	var businessID int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &businessID, query, args...)

	logQuery(ctx, query, args, businessID, err)

	if err != nil {
		return 0, err
	}
	return businessID, nil
}

// LockByID takes a row lock on the business for the rest of the context transaction.
// It reports false when the business does not exist.
func (r *BusinessWriteRepository) LockByID(ctx context.Context, businessID int64) (bool, error) {
	const query = `SELECT id FROM businesses WHERE id = $1 FOR UPDATE`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, businessID)

	logQuery(ctx, query, []any{businessID}, id, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateRating stores a recomputed rating. It is only used by the rating aggregation.
func (r *BusinessWriteRepository) UpdateRating(ctx context.Context, businessID int64, rating float64) error {
	const query = `UPDATE businesses SET rating = $2 WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, businessID, rating)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, []any{businessID, rating}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrBusinessNotFound
	}
	return nil
}
