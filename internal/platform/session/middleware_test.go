package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"coffeeshop_backend/internal/feature/auth/usecase"
)

// mockResolver is a mock implementation of the Resolver interface.
type mockResolver struct {
	ResolveFunc func(ctx context.Context, token string) (uint, error)
}

func (m *mockResolver) Resolve(ctx context.Context, token string) (uint, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, token)
	}
	return 0, usecase.ErrSessionNotFound
}

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		cookie         *http.Cookie
		resolveFunc    func(ctx context.Context, token string) (uint, error)
		expectedStatus int
		expectedUserID uint
	}{
		{
			name:   "success: valid session token",
			cookie: &http.Cookie{Name: "session_token", Value: "valid-token"},
			resolveFunc: func(ctx context.Context, token string) (uint, error) {
				assert.Equal(t, "valid-token", token)
				return 42, nil
			},
			expectedStatus: http.StatusOK,
			expectedUserID: 42,
		},
		{
			name:           "failure: missing cookie",
			cookie:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "failure: unknown token",
			cookie: &http.Cookie{Name: "session_token", Value: "bogus-token"},
			resolveFunc: func(ctx context.Context, token string) (uint, error) {
				return 0, usecase.ErrSessionNotFound
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "failure: wrong cookie name",
			cookie: &http.Cookie{Name: "other_cookie", Value: "valid-token"},
			resolveFunc: func(ctx context.Context, token string) (uint, error) {
				return 42, nil
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &mockResolver{ResolveFunc: tt.resolveFunc}

			var gotUserID uint
			var gotOK bool

			router := gin.New()
			router.Use(AuthRequired(resolver, "session_token"))
			router.GET("/protected", func(c *gin.Context) {
				gotUserID, gotOK = UserID(c)
				c.JSON(http.StatusOK, gin.H{"message": "ok"})
			})

			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				assert.True(t, gotOK, "user ID should be set in the context")
				assert.Equal(t, tt.expectedUserID, gotUserID)
			} else {
				assert.Contains(t, w.Body.String(), "login required")
			}
		})
	}
}

func TestUserID_NotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := UserID(c)
	assert.False(t, ok)
}
