package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamevault/backend/internal/content"
	"gamevault/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type guardFunc func(ctx context.Context, capability content.Capability) error

func (f guardFunc) RequireCapability(ctx context.Context, capability content.Capability) error {
	return f(ctx, capability)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// whoami echoes the identity seen by the handler.
func whoami(c *gin.Context) {
	id, ok := content.IdentityFromContext(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"user": id.UserID, "authenticated": ok, "userID": c.GetString("userID")})
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.GenerateToken(userID, testSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthMiddleware(t *testing.T) {
	router := setupRouter()
	router.GET("/me", AuthMiddleware(testSecret), whoami)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token abc", http.StatusUnauthorized},
		{"invalid token", "Bearer abc", http.StatusUnauthorized},
		{"valid token", bearer(t, "user-1"), http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.JSONEq(t, `{"user":"user-1","authenticated":true,"userID":"user-1"}`, w.Body.String())
			}
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	router := setupRouter()
	router.GET("/home", OptionalAuthMiddleware(testSecret), whoami)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("Authorization", "Bearer broken")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"","authenticated":false,"userID":""}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("Authorization", bearer(t, "user-2"))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"user-2","authenticated":true,"userID":"user-2"}`, w.Body.String())
}

func TestAdminMiddleware(t *testing.T) {
	guard := guardFunc(func(ctx context.Context, capability content.Capability) error {
		id, _ := content.IdentityFromContext(ctx)
		switch id.UserID {
		case "admin":
			return nil
		case "flaky":
			return errors.New("database is down")
		}
		return content.ErrUnauthorized
	})

	router := setupRouter()
	router.GET("/admin", AuthMiddleware(testSecret), AdminMiddleware(guard), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	cases := map[string]int{
		"admin": http.StatusNoContent,
		"user":  http.StatusUnauthorized,
		"flaky": http.StatusInternalServerError,
	}
	for userID, status := range cases {
		t.Run(userID, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", bearer(t, userID))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, status, w.Code)
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", bearer(t, "user"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.JSONEq(t, `{"success":false,"error":"unauthorized"}`, w.Body.String())
}
