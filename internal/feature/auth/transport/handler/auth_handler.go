// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"carprice_backend/internal/feature/auth/transport/http/dto"
	"carprice_backend/internal/feature/auth/usecase"
	"carprice_backend/internal/platform/web"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は指定された名前・メールアドレス・パスワードで新規ユーザーを登録します。
	Signup(ctx context.Context, name, email, password string) error
	// Login はユーザーを認証し、成功時にセッションとJWTトークンを返します。
	Login(ctx context.Context, email, password, userAgent, ipAddress string) (*usecase.LoginResult, error)
	// Logout は指定されたセッションを失効させます。
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// フォーム（HTMLページ）とJSON APIの両方に対応します。
type AuthHandler struct {
	auth       AuthUsecase
	sessionTTL int // セッションクッキーのMax-Age（秒）
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase, sessionTTLSeconds int) *AuthHandler {
	return &AuthHandler{auth: auth, sessionTTL: sessionTTLSeconds}
}

// LoginPage はログインページを表示します。
// 既にログイン済みの場合はホームへリダイレクトします。
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if token, err := c.Cookie(web.SessionCookieName); err == nil && token != "" {
		c.Redirect(http.StatusFound, "/home")
		return
	}
	kind, message, _ := web.TakeFlash(c)
	c.HTML(http.StatusOK, "login.html", gin.H{
		"FlashKind":    kind,
		"FlashMessage": message,
	})
}

// Login はログインフォームの送信を処理します。
// - 認証成功時はセッションクッキーを設定してホームへリダイレクト
// - 認証失敗時はフラッシュメッセージ付きでログインページへ戻す
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		web.Flash(c, "error", "Invalid credentials. Please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		web.Flash(c, "error", "Invalid credentials. Please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	web.SetSessionCookie(c, result.Session.ID, h.sessionTTL)
	web.Flash(c, "success", "Logged in successfully!")
	c.Redirect(http.StatusFound, "/home")
}

// APILogin はJSONクライアント向けのログインエンドポイントを処理します。
// 成功時はJSON API用のJWTトークンを返します。
func (h *AuthHandler) APILogin(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("api login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		slog.Warn("api login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "invalid email or password"})
		return
	}

	slog.Info("api login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenRes{Token: result.Token})
}

// Signup はサインアップフォームの送信を処理します。
// - メールアドレス重複時はフラッシュメッセージ付きでログインページへ戻す
// - 成功時はサインインを促すメッセージを表示
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		web.Flash(c, "error", "Please fill in all fields (password must be at least 8 characters).")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			web.Flash(c, "error", "Email already exists. Please login.")
		} else {
			slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			web.Flash(c, "error", "Signup failed. Please try again.")
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	web.Flash(c, "success", "Account created successfully. Please sign in.")
	c.Redirect(http.StatusFound, "/login")
}

// Logout は現在のセッションを失効させてログインページへ戻します。
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(web.SessionCookieName); err == nil && token != "" {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			slog.Warn("logout failed", "error", err)
		}
	}
	web.ClearSessionCookie(c)
	web.Flash(c, "success", "You have been logged out.")
	c.Redirect(http.StatusFound, "/login")
}
