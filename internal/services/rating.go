package services

//go:generate mockgen -source=rating.go -destination=mock_rating.go -package=services

import (
	"context"

	"github.com/sbilibin2017/townlink/internal/logger"
)

// RatingReader reads the ratings linked to a business.
type RatingReader interface {
	GetRatingsByBusinessID(ctx context.Context, businessID int64) ([]int, error)
}

// RatingWriter locks a business row and stores its rating.
type RatingWriter interface {
	LockByID(ctx context.Context, businessID int64) (bool, error)
	UpdateRating(ctx context.Context, businessID int64, rating float64) error
}

// TxRunner runs fn inside a transaction carried by the context passed to it.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

// RatingService keeps Business.rating equal to the mean of its review ratings.
type RatingService struct {
	tx     TxRunner
	reader RatingReader
	writer RatingWriter
	cache  BusinessCache
}

// NewRatingService creates a new RatingService. cache may be nil.
func NewRatingService(tx TxRunner, reader RatingReader, writer RatingWriter, cache BusinessCache) *RatingService {
	return &RatingService{
		tx:     tx,
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// AverageRating returns the arithmetic mean of ratings, or 0 for none.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

// Recompute recalculates and stores the rating of a business from all of its reviews.
// The business row stays locked until the new rating is written, so concurrent
// recomputations for the same business run one after another.
func (svc *RatingService) Recompute(ctx context.Context, businessID int64) (float64, error) {
	var rating float64

	err := svc.tx.Run(ctx, func(ctx context.Context) error {
		found, err := svc.writer.LockByID(ctx, businessID)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}

		ratings, err := svc.reader.GetRatingsByBusinessID(ctx, businessID)
		if err != nil {
			return err
		}

		rating = AverageRating(ratings)
		return svc.writer.UpdateRating(ctx, businessID, rating)
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to recompute rating", "business_id", businessID, "err", err)
		return 0, err
	}

	if svc.cache != nil {
		if err := svc.cache.Delete(ctx, businessID); err != nil {
			logger.FromContext(ctx).Warnw("failed to evict cached business", "business_id", businessID, "err", err)
		}
	}

	return rating, nil
}
