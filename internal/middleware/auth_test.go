package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"englearn/internal/repository"
	"englearn/internal/service"
	"englearn/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestRequireAuth(t *testing.T) {
	user := testutil.NewTestUser(3, "alice", "hash")

	mockUsers := new(testutil.MockUserRepository)
	mockUsers.On("GetUserByToken", "good-token").Return(user, nil)
	mockUsers.On("GetUserByToken", "bad-token").Return(nil, repository.ErrNotFound)

	authService := service.NewAuthService(mockUsers, testutil.NewTestLogger())
	mw := RequireAuth(authService, testutil.NewTestLogger())

	var gotUserID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := UserFrom(r.Context()); ok {
			gotUserID = u.ID
		}
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{
			name:           "valid token",
			header:         "Bearer good-token",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown token",
			header:         "Bearer bad-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			header:         "Basic abc",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = 0

			req := httptest.NewRequest(http.MethodGet, "/api/auth/current", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			mw(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, 3, gotUserID)
			}
		})
	}
}
