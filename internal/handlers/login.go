package handlers

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/townlink/internal/logger"
	"github.com/sbilibin2017/townlink/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, int64, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// default: Login successful
	Message string `json:"message"`

	// JWT token, valid for one hour by default
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Id of the authenticated account
	// default: 1
	UserID int64 `json:"userId"`

	// Username of the authenticated account
	// default: john_doe
	Username string `json:"username"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.MessageResponse "Invalid request body / invalid username or password"
// @Failure 429 {object} handlers.MessageResponse "Too many requests"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /api/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := decodeJSON(w, r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, userID, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeMessage(w, http.StatusBadRequest, "Username and password are required")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeMessage(w, http.StatusBadRequest, "Invalid username or password")
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Message:  "Login successful",
			Token:    token,
			UserID:   userID,
			Username: strings.TrimSpace(req.Username),
		})
	}
}
