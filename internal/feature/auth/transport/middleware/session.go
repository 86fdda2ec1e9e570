// Package middleware はセッション／トークン認証のGinミドルウェアを提供します。
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"carprice_backend/internal/feature/auth/domain/entity"
	jwtmw "carprice_backend/internal/platform/jwt"
	"carprice_backend/internal/platform/web"
)

const (
	// ContextUserID は認証済みユーザーIDを格納するGinコンテキストキーです。
	ContextUserID = "userID"
	// ContextUserName は認証済みユーザー名を格納するGinコンテキストキーです。
	ContextUserName = "userName"
)

// SessionValidator はセッショントークンの検証インターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（middleware）側で定義します。
type SessionValidator interface {
	ValidateSession(ctx context.Context, sessionID string) (*entity.Session, error)
}

// PageAuthRequired はHTMLページ用の認証ミドルウェアを返します。
// 有効なセッションクッキーがない場合、/loginへリダイレクトします。
func PageAuthRequired(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(web.SessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		session, err := sessions.ValidateSession(c.Request.Context(), token)
		if err != nil {
			web.ClearSessionCookie(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextUserName, session.UserName)
		c.Next()
	}
}

// APIAuthRequired はJSON API用の認証ミドルウェアを返します。
// セッションクッキーまたはBearer JWTのいずれかを受け付けます。
func APIAuthRequired(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. セッションクッキーを優先
		if token, err := c.Cookie(web.SessionCookieName); err == nil && token != "" {
			if session, err := sessions.ValidateSession(c.Request.Context(), token); err == nil {
				c.Set(ContextUserID, session.UserID)
				c.Set(ContextUserName, session.UserName)
				c.Next()
				return
			}
		}

		// 2. Authorizationヘッダー（Bearer JWT）
		auth := c.GetHeader("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenStr := strings.TrimPrefix(auth, "Bearer ")
			if userID, err := jwtmw.VerifyToken(tokenStr); err == nil {
				c.Set(ContextUserID, userID)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	}
}
