package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shopbook-backend/internal/security"
)

func newTestAuth(t *testing.T) (*AuthMiddleware, security.TokenManager) {
	t.Helper()
	tokens := security.NewTokenManager("unit-test-secret-key-0123456789abcdef", time.Hour, 24*time.Hour)
	return NewAuthMiddleware(tokens), tokens
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	mw, tokens := newTestAuth(t)

	var gotUserID int32
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.RequireAuth(next)

	t.Run("ValidToken", func(t *testing.T) {
		called = false
		token, err := tokens.GenerateAccessToken(42, "a@x.com")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/balance", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, called)
		assert.Equal(t, int32(42), gotUserID)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		called = false
		req := httptest.NewRequest("GET", "/api/balance", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, called)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		called = false
		req := httptest.NewRequest("GET", "/api/balance", nil)
		req.Header.Set("Authorization", "Token abc")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, called)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		called = false
		req := httptest.NewRequest("GET", "/api/balance", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, called)
	})

	t.Run("RefreshTokenRejected", func(t *testing.T) {
		called = false
		token, err := tokens.GenerateRefreshToken(42, "a@x.com")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/balance", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, called)
	})

	t.Run("CaseInsensitiveScheme", func(t *testing.T) {
		called = false
		token, err := tokens.GenerateAccessToken(42, "a@x.com")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/balance", nil)
		req.Header.Set("Authorization", "bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, called)
	})
}
