package services

//go:generate mockgen -source=review.go -destination=mock_review.go -package=services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sbilibin2017/townlink/internal/logger"
	"github.com/sbilibin2017/townlink/internal/models"
	"github.com/sbilibin2017/townlink/internal/repositories"
)

// ReviewReader defines read-only operations for reviews.
type ReviewReader interface {
	ListByBusinessID(ctx context.Context, businessID int64) ([]models.ReviewDB, error)
}

// ReviewWriter defines write operations for reviews.
type ReviewWriter interface {
	Save(ctx context.Context, review *models.ReviewDB) (int64, error)
}

// RatingRecomputer refreshes a business rating after its reviews change.
type RatingRecomputer interface {
	Recompute(ctx context.Context, businessID int64) (float64, error)
}

// ReviewService handles the review ledger.
type ReviewService struct {
	businesses  BusinessReader
	reader      ReviewReader
	writer      ReviewWriter
	ratings     RatingRecomputer
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewReviewService creates a new ReviewService. kafkaWriter may be nil.
func NewReviewService(
	businesses BusinessReader,
	reader ReviewReader,
	writer ReviewWriter,
	ratings RatingRecomputer,
	kafkaWriter KafkaWriter,
) *ReviewService {
	return &ReviewService{
		businesses:  businesses,
		reader:      reader,
		writer:      writer,
		ratings:     ratings,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// AddReview stores a review written by userID and refreshes the business rating.
// The review is kept even if the rating refresh fails.
func (svc *ReviewService) AddReview(ctx context.Context, userID int64, input models.ReviewInput) (int64, error) {
	log := logger.FromContext(ctx)

	input.ReviewerName = strings.TrimSpace(input.ReviewerName)
	input.Text = strings.TrimSpace(input.Text)
	if err := validateStruct(input); err != nil {
		log.Warnw("invalid review input", "err", err)
		return 0, err
	}

	business, err := svc.businesses.GetByID(ctx, input.BusinessID)
	if err != nil {
		log.Errorw("failed to get business", "business_id", input.BusinessID, "err", err)
		return 0, err
	}
	if business == nil {
		return 0, ErrNotFound
	}

	review := &models.ReviewDB{
		BusinessID:   input.BusinessID,
		UserID:       &userID,
		ReviewerName: input.ReviewerName,
		Text:         input.Text,
		Rating:       input.Rating,
		Date:         svc.now().Format(models.ReviewDateLayout),
	}

	reviewID, err := svc.writer.Save(ctx, review)
	if errors.Is(err, repositories.ErrBusinessNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		log.Errorw("failed to save review", "business_id", input.BusinessID, "err", err)
		return 0, err
	}
	review.ReviewID = reviewID

	// best effort: the business rating may lag until the next review
	if rating, err := svc.ratings.Recompute(ctx, input.BusinessID); err != nil {
		log.Errorw("review saved but rating not refreshed", "review_id", reviewID, "business_id", input.BusinessID, "err", err)
	} else {
		log.Infow("review added", "review_id", reviewID, "business_id", input.BusinessID, "rating", rating)
	}

	svc.publishReviewCreated(ctx, review)

	return reviewID, nil
}

// ListByBusiness returns every review of a business.
func (svc *ReviewService) ListByBusiness(ctx context.Context, businessID int64) ([]models.ReviewDB, error) {
	reviews, err := svc.reader.ListByBusinessID(ctx, businessID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list reviews", "business_id", businessID, "err", err)
		return nil, err
	}
	if reviews == nil {
		reviews = []models.ReviewDB{}
	}
	return reviews, nil
}
