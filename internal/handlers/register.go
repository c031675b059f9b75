package handlers

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/townlink/internal/logger"
	"github.com/sbilibin2017/townlink/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) (int64, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered!
	Message string `json:"message"`

	// Id of the new account
	// default: 1
	UserID int64 `json:"userId"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Usernames are unique and case-sensitive. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.MessageResponse "Missing username or password / invalid request"
// @Failure 409 {object} handlers.MessageResponse "Username already exists"
// @Failure 429 {object} handlers.MessageResponse "Too many requests"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /api/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := decodeJSON(w, r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		userID, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeMessage(w, http.StatusBadRequest, "Username and password are required")
			case errors.Is(err, services.ErrDuplicateUsername):
				writeMessage(w, http.StatusConflict, "Username already exists")
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered!",
			UserID:  userID,
		})
	}
}
