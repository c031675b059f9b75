package models

// ReviewCreatedEvent is published after a review has been stored.
type ReviewCreatedEvent struct {
	EventID    string `json:"event_id"`    // Unique identifier of the event
	Type       string `json:"type"`        // Always "review.created"
	ReviewID   int64  `json:"review_id"`   // Stored review
	BusinessID int64  `json:"business_id"` // Reviewed business
	UserID     *int64 `json:"user_id"`     // Reviewer account, if any
	Rating     int    `json:"rating"`      // Star rating 1..5
	Date       string `json:"date"`        // Review date as stored
	Timestamp  int64  `json:"timestamp"`   // Unix seconds when the event was produced
}
