package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/townlink/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "secret").Return("token123", int64(5), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{
				"message":  "Login successful",
				"token":    "token123",
				"userId":   float64(5),
				"username": "john",
			},
		},
		{
			name: "padded username echoed trimmed",
			body: `{"username":" john ","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), " john ", "secret").Return("token123", int64(5), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{
				"message":  "Login successful",
				"token":    "token123",
				"userId":   float64(5),
				"username": "john",
			},
		},
		{
			name: "invalid credentials",
			body: `{"username":"alice","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice", "wrong").Return("", int64(0), services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"message": "Invalid username or password"},
		},
		{
			name: "missing fields",
			body: `{}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "", "").Return("", int64(0), services.ErrInvalidInput)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"message": "Username and password are required"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob","password":"pass"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "bob", "pass").Return("", int64(0), errors.New("db failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"message": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"message": "Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var resp map[string]any
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
