package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMissing is returned when the request carries no bearer token.
	ErrTokenMissing = errors.New("bearer token missing")
	// ErrTokenInvalid is returned for tokens with a bad signature, payload or algorithm.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned for correctly signed tokens past their expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the payload carried by issued tokens.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	secretKey []byte
	exp       time.Duration
	now       func() time.Time
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) {
		j.secretKey = []byte(secret)
	}
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.exp = exp
	}
}

// WithClock replaces time.Now for issuing and validating tokens.
func WithClock(now func() time.Time) Opt {
	return func(j *JWT) {
		j.now = now
	}
}

// New creates a new JWT instance. Tokens live for one hour unless WithExpiration is given.
func New(opts ...Opt) *JWT {
	j := &JWT{
		exp: time.Hour,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token for the given user.
func (j *JWT) Generate(ctx context.Context, userID int64, username string) (string, error) {
	now := j.now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GetClaims parses and verifies tokenString.
// It returns ErrTokenExpired for expired tokens and ErrTokenInvalid for everything else that fails.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return j.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.UserID <= 0 || claims.Subject != strconv.FormatInt(claims.UserID, 10) {
		return nil, fmt.Errorf("%w: user id claim mismatch", ErrTokenInvalid)
	}
	if claims.Username == "" {
		return nil, fmt.Errorf("%w: username claim missing", ErrTokenInvalid)
	}

	return claims, nil
}

// Validate reports whether tokenString is a valid, unexpired token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("%w: authorization header missing", ErrTokenMissing)
	}

	parts := strings.Fields(authHeader)
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: authorization header has no token", ErrTokenMissing)
	}
	if len(parts) > 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", fmt.Errorf("%w: invalid authorization header format", ErrTokenInvalid)
	}

	return parts[1], nil
}

type claimsKey struct{}

// ContextWithClaims stores verified claims in ctx.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims stored by ContextWithClaims, or nil.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey{}).(*Claims)
	return claims
}
