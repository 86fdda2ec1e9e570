package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carprice_backend/internal/feature/auth/domain/entity"
	"carprice_backend/internal/feature/auth/usecase"
	jwtmw "carprice_backend/internal/platform/jwt"
	"carprice_backend/internal/platform/web"
)

// mockSessionValidator はSessionValidatorインターフェースのモック実装です。
type mockSessionValidator struct {
	ValidateSessionFunc func(ctx context.Context, sessionID string) (*entity.Session, error)
}

func (m *mockSessionValidator) ValidateSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	if m.ValidateSessionFunc != nil {
		return m.ValidateSessionFunc(ctx, sessionID)
	}
	return nil, usecase.ErrSessionNotFound
}

func validSession() *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        "valid-token",
		UserID:    1,
		UserName:  "Test User",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

// pageRouter wires PageAuthRequired in front of a probe handler that records
// the user set on the context.
func pageRouter(sessions SessionValidator) (*gin.Engine, *gin.H) {
	gin.SetMode(gin.TestMode)
	captured := gin.H{}
	r := gin.New()
	r.GET("/home", PageAuthRequired(sessions), func(c *gin.Context) {
		captured[ContextUserID], _ = c.Get(ContextUserID)
		captured[ContextUserName], _ = c.Get(ContextUserName)
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestPageAuthRequired(t *testing.T) {
	t.Run("valid cookie passes through with user context", func(t *testing.T) {
		sessions := &mockSessionValidator{
			ValidateSessionFunc: func(ctx context.Context, sessionID string) (*entity.Session, error) {
				assert.Equal(t, "valid-token", sessionID)
				return validSession(), nil
			},
		}
		r, captured := pageRouter(sessions)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/home", nil)
		req.AddCookie(&http.Cookie{Name: web.SessionCookieName, Value: "valid-token"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(1), (*captured)[ContextUserID])
		assert.Equal(t, "Test User", (*captured)[ContextUserName])
	})

	t.Run("missing cookie redirects to login", func(t *testing.T) {
		r, _ := pageRouter(&mockSessionValidator{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/home", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("invalid session clears the cookie and redirects", func(t *testing.T) {
		sessions := &mockSessionValidator{
			ValidateSessionFunc: func(ctx context.Context, sessionID string) (*entity.Session, error) {
				return nil, usecase.ErrSessionExpired
			},
		}
		r, _ := pageRouter(sessions)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/home", nil)
		req.AddCookie(&http.Cookie{Name: web.SessionCookieName, Value: "stale-token"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))

		var cleared *http.Cookie
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == web.SessionCookieName {
				cleared = cookie
			}
		}
		require.NotNil(t, cleared, "session cookie must be cleared")
		assert.Less(t, cleared.MaxAge, 0)
	})
}

func apiRouter(sessions SessionValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/ping", APIAuthRequired(sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.MustGet(ContextUserID)})
	})
	return r
}

func TestAPIAuthRequired(t *testing.T) {
	t.Run("valid session cookie is accepted", func(t *testing.T) {
		sessions := &mockSessionValidator{
			ValidateSessionFunc: func(ctx context.Context, sessionID string) (*entity.Session, error) {
				return validSession(), nil
			},
		}
		r := apiRouter(sessions)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.AddCookie(&http.Cookie{Name: web.SessionCookieName, Value: "valid-token"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid bearer token is accepted", func(t *testing.T) {
		t.Setenv(jwtmw.EnvKeyJWTSecret, "test-secret")

		g := jwtmw.NewGenerator("test-secret", time.Hour)
		token, err := g.GenerateToken(9, "api@example.com")
		require.NoError(t, err)

		r := apiRouter(&mockSessionValidator{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":9`)
	})

	t.Run("no credentials returns 401", func(t *testing.T) {
		r := apiRouter(&mockSessionValidator{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authentication required")
	})

	t.Run("invalid bearer token returns 401", func(t *testing.T) {
		t.Setenv(jwtmw.EnvKeyJWTSecret, "test-secret")

		r := apiRouter(&mockSessionValidator{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("stale cookie falls back to bearer token", func(t *testing.T) {
		t.Setenv(jwtmw.EnvKeyJWTSecret, "test-secret")

		g := jwtmw.NewGenerator("test-secret", time.Hour)
		token, err := g.GenerateToken(3, "api@example.com")
		require.NoError(t, err)

		sessions := &mockSessionValidator{
			ValidateSessionFunc: func(ctx context.Context, sessionID string) (*entity.Session, error) {
				return nil, usecase.ErrSessionRevoked
			},
		}
		r := apiRouter(sessions)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.AddCookie(&http.Cookie{Name: web.SessionCookieName, Value: "stale"})
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
