// Package web holds small helpers shared by the HTML-facing handlers.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie     = "flash"
	flashKindCookie = "flash_kind"
)

// Flash stores a one-shot message for the next page render.
// Kind is "success" or "error" and selects the banner style.
func Flash(c *gin.Context, kind, message string) {
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
	c.SetCookie(flashKindCookie, kind, 60, "/", "", false, true)
}

// TakeFlash returns and clears the pending flash message, if any.
func TakeFlash(c *gin.Context) (kind, message string, ok bool) {
	message, err := c.Cookie(flashCookie)
	if err != nil || message == "" {
		return "", "", false
	}
	kind, _ = c.Cookie(flashKindCookie)
	if kind == "" {
		kind = "success"
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	c.SetCookie(flashKindCookie, "", -1, "/", "", false, true)
	return kind, message, true
}

// SetSessionCookie attaches the session token to the response.
func SetSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", false, true)
}

// ClearSessionCookie removes the session token cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// SessionCookieName is the cookie holding the opaque session token.
const SessionCookieName = "session_token"
