package repositories

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/townlink/internal/models"
)

// ErrBusinessNotFound is returned when a write references a business that does not exist.
var ErrBusinessNotFound = errors.New("business not found")

// ReviewReadRepository handles review read operations
type ReviewReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewReviewReadRepository(db *sqlx.DB, txGetter TxGetter) *ReviewReadRepository {
	return &ReviewReadRepository{db: db, txGetter: txGetter}
}

// ListByBusinessID returns all reviews of a business in insertion order.
func (r *ReviewReadRepository) ListByBusinessID(ctx context.Context, businessID int64) ([]models.ReviewDB, error) {
	const query = `
		SELECT id, business_id, user_id, reviewer_name, body, rating, review_date
		FROM reviews
		WHERE business_id = $1
		ORDER BY id
	`

	reviews := []models.ReviewDB{}
	err := r.db.SelectContext(ctx, &reviews, query, businessID)

	logQuery(ctx, query, []any{businessID}, len(reviews), err)

	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetRatingsByBusinessID returns the rating of every review linked to the business.
func (r *ReviewReadRepository) GetRatingsByBusinessID(ctx context.Context, businessID int64) ([]int, error) {
	const query = `SELECT rating FROM reviews WHERE business_id = $1`

	ratings := []int{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ratings, query, businessID)

	logQuery(ctx, query, []any{businessID}, ratings, err)

	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// ReviewWriteRepository handles review write operations
type ReviewWriteRepository struct {
	db *sqlx.DB
}

func NewReviewWriteRepository(db *sqlx.DB) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db}
}

// Save inserts a review and returns its generated id.
func (r *ReviewWriteRepository) Save(ctx context.Context, review *models.ReviewDB) (int64, error) {
	const query = `
		INSERT INTO reviews (business_id, user_id, reviewer_name, body, rating, review_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`
	args := []any{review.BusinessID, review.UserID, review.ReviewerName, review.Text, review.Rating, review.Date}

	var reviewID int64
	err := r.db.GetContext(ctx, &reviewID, query, args...)

	logQuery(ctx, query, args, reviewID, err)

	if isConstraintViolation(err, pgForeignKeyViolation, "reviews_business_id_fkey") {
		return 0, ErrBusinessNotFound
	}
	if err != nil {
		return 0, err
	}
	return reviewID, nil
}
