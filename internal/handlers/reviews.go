package handlers

//go:generate mockgen -source=reviews.go -destination=mock_reviews.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/townlink/internal/jwt"
	"github.com/sbilibin2017/townlink/internal/logger"
	"github.com/sbilibin2017/townlink/internal/models"
	"github.com/sbilibin2017/townlink/internal/services"
)

// ReviewLister defines the interface for listing the reviews of a business.
type ReviewLister interface {
	ListByBusiness(ctx context.Context, businessID int64) ([]models.ReviewDB, error)
}

// ReviewCreator defines the interface for adding a review.
type ReviewCreator interface {
	AddReview(ctx context.Context, userID int64, input models.ReviewInput) (int64, error)
}

// CreateReviewRequest represents the JSON body for adding a review
// swagger:model CreateReviewRequest
type CreateReviewRequest struct {
	// required: true
	// default: 1
	BusinessID int64 `json:"businessId"`

	// required: true
	// default: Alice
	ReviewerName string `json:"reviewerName"`

	// required: true
	// default: Great coffee
	Text string `json:"text"`

	// Stars from 1 to 5
	// required: true
	// default: 5
	Rating int `json:"rating"`
}

// CreateReviewResponse represents a successful review creation
// swagger:model CreateReviewResponse
type CreateReviewResponse struct {
	// default: Review added!
	Message string `json:"message"`

	// default: 1
	ReviewID int64 `json:"reviewId"`
}

// NewListReviewsHandler returns an HTTP handler listing the reviews of a business.
// @Summary List reviews
// @Description Returns all reviews of a business in insertion order. Unknown businesses have no reviews.
// @Tags reviews
// @Produce json
// @Param businessId path int true "Business id"
// @Success 200 {array} models.ReviewDB
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /api/reviews/{businessId} [get]
func NewListReviewsHandler(svc ReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID, ok := parseID(r, "businessId")
		if !ok {
			writeJSON(w, http.StatusOK, []models.ReviewDB{})
			return
		}

		reviews, err := svc.ListByBusiness(r.Context(), businessID)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if reviews == nil {
			reviews = []models.ReviewDB{}
		}
		writeJSON(w, http.StatusOK, reviews)
	}
}

// NewCreateReviewHandler returns an HTTP handler adding a review by the caller.
// @Summary Add review
// @Description Stores a review and refreshes the business average rating
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body handlers.CreateReviewRequest true "Review"
// @Success 201 {object} handlers.CreateReviewResponse
// @Failure 400 {object} handlers.MessageResponse "Invalid request"
// @Failure 401 {object} handlers.MessageResponse "Access denied"
// @Failure 403 {object} handlers.MessageResponse "Invalid token"
// @Failure 404 {object} handlers.MessageResponse "Business not found"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /api/reviews [post]
func NewCreateReviewHandler(svc ReviewCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "Access denied")
			return
		}

		var req CreateReviewRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		reviewID, err := svc.AddReview(r.Context(), claims.UserID, models.ReviewInput{
			BusinessID:   req.BusinessID,
			ReviewerName: req.ReviewerName,
			Text:         req.Text,
			Rating:       req.Rating,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeMessage(w, http.StatusBadRequest, "Business, reviewer name, text and a rating from 1 to 5 are required")
			case errors.Is(err, services.ErrNotFound):
				writeMessage(w, http.StatusNotFound, "Business not found")
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateReviewResponse{
			Message:  "Review added!",
			ReviewID: reviewID,
		})
	}
}
