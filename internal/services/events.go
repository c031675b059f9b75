package services

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/townlink/internal/logger"
	"github.com/sbilibin2017/townlink/internal/models"
	"github.com/segmentio/kafka-go"
)

// ReviewCreatedEventType is the type field of review creation events.
const ReviewCreatedEventType = "review.created"

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishReviewCreated publishes a review to Kafka keyed by business id.
func (svc *ReviewService) publishReviewCreated(ctx context.Context, review *models.ReviewDB) {
	log := logger.FromContext(ctx)

	if svc.kafkaWriter == nil {
		log.Debugw("Kafka writer not configured, skipping publishing", "review_id", review.ReviewID)
		return
	}

	event := models.ReviewCreatedEvent{
		EventID:    uuid.NewString(),
		Type:       ReviewCreatedEventType,
		ReviewID:   review.ReviewID,
		BusinessID: review.BusinessID,
		UserID:     review.UserID,
		Rating:     review.Rating,
		Date:       review.Date,
		Timestamp:  svc.now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal review event for Kafka", "review_id", review.ReviewID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(review.BusinessID, 10)),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish review event to Kafka", "review_id", review.ReviewID, "error", err)
	} else {
		log.Infow("Review event published to Kafka", "review_id", review.ReviewID, "event_id", event.EventID)
	}
}
