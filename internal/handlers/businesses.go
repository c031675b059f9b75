package handlers

//go:generate mockgen -source=businesses.go -destination=mock_businesses.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/townlink/internal/jwt"
	"github.com/sbilibin2017/townlink/internal/logger"
	"github.com/sbilibin2017/townlink/internal/models"
	"github.com/sbilibin2017/townlink/internal/services"
)

// BusinessLister defines the interface for listing businesses.
type BusinessLister interface {
	List(ctx context.Context) ([]models.BusinessDB, error)
}

// BusinessGetter defines the interface for reading a single business.
type BusinessGetter interface {
	Get(ctx context.Context, businessID int64) (*models.BusinessDB, error)
}

// BusinessCreator defines the interface for adding a business.
type BusinessCreator interface {
	Create(ctx context.Context, ownerID int64, input models.BusinessInput) (int64, error)
}

// CreateBusinessRequest represents the JSON body for adding a business
// swagger:model CreateBusinessRequest
type CreateBusinessRequest struct {
	// required: true
	// default: Joe's Diner
	Name string `json:"name"`

	// required: true
	// default: Restaurant
	Category string `json:"category"`

	// required: true
	// default: 12 Main St
	Location string `json:"location"`

	// required: true
	// default: Burgers and shakes
	Description string `json:"description"`

	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	Hours   string `json:"hours"`

	// Image URL, a placeholder is stored when empty
	Image string `json:"image"`

	// Number or numeric string
	Latitude Coordinate `json:"latitude" swaggertype:"number"`

	// Number or numeric string
	Longitude Coordinate `json:"longitude" swaggertype:"number"`
}

// CreateBusinessResponse represents a successful business creation
// swagger:model CreateBusinessResponse
type CreateBusinessResponse struct {
	// default: Business added!
	Message string `json:"message"`

	// default: 1
	BusinessID int64 `json:"businessId"`
}

// parseID reads a positive integer path parameter.
func parseID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// NewListBusinessesHandler returns an HTTP handler listing all businesses.
// @Summary List businesses
// @Description Returns every business in insertion order
// @Tags businesses
// @Produce json
// @Success 200 {array} models.BusinessDB
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /api/businesses [get]
func NewListBusinessesHandler(svc BusinessLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businesses, err := svc.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if businesses == nil {
			businesses = []models.BusinessDB{}
		}
		writeJSON(w, http.StatusOK, businesses)
	}
}

// NewGetBusinessHandler returns an HTTP handler for a single business.
// @Summary Get business
// @Description Returns one business with its current average rating
// @Tags businesses
// @Produce json
// @Param id path int true "Business id"
// @Success 200 {object} models.BusinessDB
// @Failure 404 {object} handlers.MessageResponse "Business not found"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /api/businesses/{id} [get]
func NewGetBusinessHandler(svc BusinessGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID, ok := parseID(r, "id")
		if !ok {
			writeMessage(w, http.StatusNotFound, "Business not found")
			return
		}

		business, err := svc.Get(r.Context(), businessID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeMessage(w, http.StatusNotFound, "Business not found")
				return
			}
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, business)
	}
}

// NewCreateBusinessHandler returns an HTTP handler adding a business owned by the caller.
// @Summary Add business
// @Description Creates a business. Name, category, location and description are required.
// @Tags businesses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param business body handlers.CreateBusinessRequest true "Business"
// @Success 201 {object} handlers.CreateBusinessResponse
// @Failure 400 {object} handlers.MessageResponse "Invalid request"
// @Failure 401 {object} handlers.MessageResponse "Access denied"
// @Failure 403 {object} handlers.MessageResponse "Invalid token"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /api/businesses [post]
func NewCreateBusinessHandler(svc BusinessCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "Access denied")
			return
		}

		var req CreateBusinessRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		businessID, err := svc.Create(r.Context(), claims.UserID, models.BusinessInput{
			Name:        req.Name,
			Category:    req.Category,
			Location:    req.Location,
			Description: req.Description,
			Phone:       req.Phone,
			Email:       req.Email,
			Website:     req.Website,
			Hours:       req.Hours,
			Image:       req.Image,
			Latitude:    req.Latitude.Value,
			Longitude:   req.Longitude.Value,
		})
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				writeMessage(w, http.StatusBadRequest, "Name, category, location and description are required")
				return
			}
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, CreateBusinessResponse{
			Message:    "Business added!",
			BusinessID: businessID,
		})
	}
}
