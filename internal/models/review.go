package models

// ReviewDateLayout formats review dates as M/D/YYYY without a time component.
const ReviewDateLayout = "1/2/2006"

// ReviewDB represents a review row in the database
// swagger:model Review
type ReviewDB struct {
	ReviewID     int64  `json:"id" db:"id"`
	BusinessID   int64  `json:"businessId" db:"business_id"`
	UserID       *int64 `json:"userId" db:"user_id"`
	ReviewerName string `json:"reviewerName" db:"reviewer_name"` // Free text, may differ from the account username
	Text         string `json:"text" db:"body"`
	Rating       int    `json:"rating" db:"rating"` // 1..5
	Date         string `json:"date" db:"review_date"`
}

// ReviewInput holds the client-supplied fields of a new review.
type ReviewInput struct {
	BusinessID   int64  `validate:"gt=0"`
	ReviewerName string `validate:"required"`
	Text         string `validate:"required"`
	Rating       int    `validate:"min=1,max=5"`
}
