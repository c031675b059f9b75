package services_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/townlink/internal/hasher"
	"github.com/sbilibin2017/townlink/internal/jwt"
	"github.com/sbilibin2017/townlink/internal/models"
	"github.com/sbilibin2017/townlink/internal/repositories"
	"github.com/sbilibin2017/townlink/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func(r *services.MockUserReader, w *services.MockUserWriter, h *services.MockPasswordHasher)
		wantID    int64
		wantErr   error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pass123",
			mockSetup: func(r *services.MockUserReader, w *services.MockUserWriter, h *services.MockPasswordHasher) {
				r.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				h.EXPECT().Hash("pass123").Return("hashed", nil)
				w.EXPECT().Save(gomock.Any(), "alice", "hashed").Return(int64(1), nil)
			},
			wantID: 1,
		},
		{
			name:     "username is trimmed",
			username: "  bob ",
			password: "pass123",
			mockSetup: func(r *services.MockUserReader, w *services.MockUserWriter, h *services.MockPasswordHasher) {
				r.EXPECT().GetByUsername(gomock.Any(), "bob").Return(nil, nil)
				h.EXPECT().Hash("pass123").Return("hashed", nil)
				w.EXPECT().Save(gomock.Any(), "bob", "hashed").Return(int64(2), nil)
			},
			wantID: 2,
		},
		{
			name:     "empty username",
			username: "",
			password: "pass123",
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:     "blank username",
			username: "   ",
			password: "pass123",
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:     "empty password",
			username: "carol",
			password: "",
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:     "user already exists",
			username: "dave",
			password: "pass123",
			mockSetup: func(r *services.MockUserReader, w *services.MockUserWriter, h *services.MockPasswordHasher) {
				r.EXPECT().GetByUsername(gomock.Any(), "dave").Return(&models.UserDB{UserID: 4, Username: "dave"}, nil)
			},
			wantErr: services.ErrDuplicateUsername,
		},
		{
			name:     "concurrent duplicate caught by unique constraint",
			username: "erin",
			password: "pass123",
			mockSetup: func(r *services.MockUserReader, w *services.MockUserWriter, h *services.MockPasswordHasher) {
				r.EXPECT().GetByUsername(gomock.Any(), "erin").Return(nil, nil)
				h.EXPECT().Hash("pass123").Return("hashed", nil)
				w.EXPECT().Save(gomock.Any(), "erin", "hashed").Return(int64(0), repositories.ErrUserExists)
			},
			wantErr: services.ErrDuplicateUsername,
		},
		{
			name:     "password too long",
			username: "frank",
			password: strings.Repeat("p", 80),
			mockSetup: func(r *services.MockUserReader, w *services.MockUserWriter, h *services.MockPasswordHasher) {
				r.EXPECT().GetByUsername(gomock.Any(), "frank").Return(nil, nil)
				h.EXPECT().Hash(gomock.Any()).Return("", hasher.ErrPasswordTooLong)
			},
			wantErr: services.ErrInvalidInput,
		},
		{
			name:     "reader error",
			username: "grace",
			password: "pass123",
			mockSetup: func(r *services.MockUserReader, w *services.MockUserWriter, h *services.MockPasswordHasher) {
				r.EXPECT().GetByUsername(gomock.Any(), "grace").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "writer error",
			username: "heidi",
			password: "pass123",
			mockSetup: func(r *services.MockUserReader, w *services.MockUserWriter, h *services.MockPasswordHasher) {
				r.EXPECT().GetByUsername(gomock.Any(), "heidi").Return(nil, nil)
				h.EXPECT().Hash("pass123").Return("hashed", nil)
				w.EXPECT().Save(gomock.Any(), "heidi", "hashed").Return(int64(0), errors.New("save error"))
			},
			wantErr: errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockHasher := services.NewMockPasswordHasher(ctrl)
			mockTokens := services.NewMockTokenGenerator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockReader, mockWriter, mockHasher)
			}

			svc := services.NewAuthService(mockReader, mockWriter, mockHasher, mockTokens)
			id, err := svc.Register(context.Background(), tt.username, tt.password)

			switch {
			case tt.wantErr == nil:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			case errors.Is(tt.wantErr, services.ErrInvalidInput), errors.Is(tt.wantErr, services.ErrDuplicateUsername):
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, id)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Zero(t, id)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	password := "secret"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name      string
		username  string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		expectJWT bool
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{UserID: 11, Username: "alice", PasswordHash: string(hashed)},
			expectJWT: true,
		},
		{
			name:      "padded username is trimmed",
			username:  "  alice ",
			loginPass: password,
			user:      &models.UserDB{UserID: 11, Username: "alice", PasswordHash: string(hashed)},
			expectJWT: true,
		},
		{
			name:      "user does not exist",
			username:  "bob",
			loginPass: password,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "invalid password",
			username:  "carol",
			loginPass: "wrongpass",
			user:      &models.UserDB{UserID: 12, Username: "carol", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "malformed stored hash",
			username:  "dan",
			loginPass: password,
			user:      &models.UserDB{UserID: 13, Username: "dan", PasswordHash: "garbage"},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "eve",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "JWT generation error",
			username:  "frank",
			loginPass: password,
			user:      &models.UserDB{UserID: 14, Username: "frank", PasswordHash: string(hashed)},
			expectJWT: true,
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockTokens := services.NewMockTokenGenerator(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, hasher.New(bcrypt.MinCost), mockTokens)

			mockReader.EXPECT().GetByUsername(gomock.Any(), strings.TrimSpace(tt.username)).Return(tt.user, tt.readerErr)
			if tt.expectJWT {
				mockTokens.EXPECT().
					Generate(gomock.Any(), tt.user.UserID, tt.user.Username).
					Return("token123", tt.jwtErr)
			}

			token, userID, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Zero(t, userID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "token123", token)
			assert.Equal(t, tt.user.UserID, userID)
		})
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockPasswordHasher(ctrl),
		services.NewMockTokenGenerator(ctrl),
	)

	_, _, err := svc.Login(context.Background(), "", "secret")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, _, err = svc.Login(context.Background(), "alice", "")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, _, err = svc.Login(context.Background(), "   ", "secret")
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

// memoryUsers is an in-memory user store with a case-sensitive unique username.
type memoryUsers struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.UserDB
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]models.UserDB{}}
}

func (m *memoryUsers) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memoryUsers) Save(ctx context.Context, username, passwordHash string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[username]; ok {
		return 0, repositories.ErrUserExists
	}
	m.nextID++
	m.users[username] = models.UserDB{UserID: m.nextID, Username: username, PasswordHash: passwordHash}
	return m.nextID, nil
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	store := newMemoryUsers()
	tokens := jwt.New(jwt.WithSecretKey("test-secret"))
	svc := services.NewAuthService(store, store, hasher.New(bcrypt.MinCost), tokens)

	accounts := map[string]string{
		"alice": "wonderland",
		"Alice": "different-case",
		"bob":   "builder",
		"ünï":   "çødé",
	}

	ids := map[string]int64{}
	for username, password := range accounts {
		id, err := svc.Register(ctx, username, password)
		require.NoError(t, err)
		ids[username] = id
	}

	for username, password := range accounts {
		token, userID, err := svc.Login(ctx, username, password)
		require.NoError(t, err, username)
		assert.Equal(t, ids[username], userID)

		claims, err := tokens.GetClaims(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, ids[username], claims.UserID)
		assert.Equal(t, username, claims.Username)

		for _, stored := range store.users {
			assert.NotEqual(t, password, stored.PasswordHash)
		}
	}

	_, _, wrongPassErr := svc.Login(ctx, "alice", "not-it")
	_, _, unknownErr := svc.Login(ctx, "mallory", "wonderland")
	assert.ErrorIs(t, wrongPassErr, services.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr, unknownErr)
}

func TestAuthService_RegisterThenLogin_PaddedUsername(t *testing.T) {
	ctx := context.Background()
	store := newMemoryUsers()
	tokens := jwt.New(jwt.WithSecretKey("test-secret"))
	svc := services.NewAuthService(store, store, hasher.New(bcrypt.MinCost), tokens)

	id, err := svc.Register(ctx, " bob ", "builder")
	require.NoError(t, err)

	for _, username := range []string{" bob ", "bob", "\tbob\n"} {
		token, userID, err := svc.Login(ctx, username, "builder")
		require.NoError(t, err, username)
		assert.Equal(t, id, userID)

		claims, err := tokens.GetClaims(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "bob", claims.Username)
	}

	_, _, err = svc.Login(ctx, " Bob ", "builder")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_DuplicateRegistration(t *testing.T) {
	ctx := context.Background()
	store := newMemoryUsers()
	svc := services.NewAuthService(store, store, hasher.New(bcrypt.MinCost), jwt.New())

	_, err := svc.Register(ctx, "alice", "first")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "second")
	assert.ErrorIs(t, err, services.ErrDuplicateUsername)
	assert.Len(t, store.users, 1)
}

func TestAuthService_SeedUser(t *testing.T) {
	ctx := context.Background()
	store := newMemoryUsers()
	svc := services.NewAuthService(store, store, hasher.New(bcrypt.MinCost), jwt.New())

	require.NoError(t, svc.SeedUser(ctx, "admin", "admin123"))
	require.NoError(t, svc.SeedUser(ctx, "admin", "other"))
	assert.Len(t, store.users, 1)

	_, _, err := svc.Login(ctx, "admin", "admin123")
	assert.NoError(t, err)
}
