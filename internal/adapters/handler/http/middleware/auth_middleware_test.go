package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) ValidateToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func setupProtectedRouter(tokens TokenValidator) *gin.Engine {
	router := gin.New()
	router.Use(AuthMiddleware(tokens))
	router.GET("/protected", func(c *gin.Context) {
		subject, ok := GetSubject(c)
		if !ok {
			c.String(http.StatusInternalServerError, "subject not found in context")
			return
		}
		c.String(http.StatusOK, "Hello "+subject)
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Parallel()

	secret := "test-secret-middleware"
	issuer := "test-issuer"

	t.Run("Success: Valid Owner Token", func(t *testing.T) {
		t.Parallel()
		tokenService := services.NewTokenService(secret, issuer, time.Hour)
		router := setupProtectedRouter(tokenService)

		validToken, err := tokenService.GenerateToken(domain.OwnerSubject)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Hello "+domain.OwnerSubject, w.Body.String())
	})

	t.Run("Fail: Missing Authorization Header", func(t *testing.T) {
		t.Parallel()
		tokens := new(MockTokenValidator)
		router := setupProtectedRouter(tokens)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authorization header required")
		tokens.AssertNotCalled(t, "ValidateToken", mock.Anything)
	})

	t.Run("Fail: Invalid Header Format", func(t *testing.T) {
		t.Parallel()
		tokens := new(MockTokenValidator)
		router := setupProtectedRouter(tokens)

		for _, h := range []string{"Bearer", "Token 12345", "Bearer12345", "Bearer ", "Bearer a b"} {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", h)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, "Should fail for header: "+h)
		}
		tokens.AssertNotCalled(t, "ValidateToken", mock.Anything)
	})

	t.Run("Fail: Rejected Token", func(t *testing.T) {
		t.Parallel()
		tokens := new(MockTokenValidator)
		tokens.On("ValidateToken", "forged").Return("", services.ErrInvalidToken)
		router := setupProtectedRouter(tokens)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer forged")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired token")
		tokens.AssertExpectations(t)
	})

	t.Run("Fail: Expired Token", func(t *testing.T) {
		t.Parallel()
		expiredService := services.NewTokenService(secret, issuer, -time.Second)
		router := setupProtectedRouter(expiredService)

		expiredToken, _ := expiredService.GenerateToken(domain.OwnerSubject)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+expiredToken)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
