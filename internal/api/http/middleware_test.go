package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debitit-backend/internal/security"
)

func TestAuthMiddleware(t *testing.T) {
	tm := security.NewTokenManager("0123456789abcdef0123456789abcdef")
	mw := NewAuthMiddleware(tm)

	var gotUserID int32
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.Handler(next)

	t.Run("no token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("x-auth-token header", func(t *testing.T) {
		token, err := tm.GenerateAccessToken(7, "owner@example.com", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/products", nil)
		req.Header.Set("x-auth-token", token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int32(7), gotUserID)
	})

	t.Run("bearer header", func(t *testing.T) {
		token, err := tm.GenerateAccessToken(9, "", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/products", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int32(9), gotUserID)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := tm.GenerateAccessToken(7, "", -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/products", nil)
		req.Header.Set("x-auth-token", token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
