// Package pages はログインゲート内のHTMLページハンドラーを提供します。
package pages

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authmw "carprice_backend/internal/feature/auth/transport/middleware"
	"carprice_backend/internal/feature/catalog"
	contactusecase "carprice_backend/internal/feature/contact/usecase"
	"carprice_backend/internal/feature/pricing/domain/entity"
	"carprice_backend/internal/platform/web"
)

// PredictUsecase は比較ページが使用する予測パイプラインを定義します。
type PredictUsecase interface {
	Predict(ctx context.Context, listing *entity.Listing) (*entity.Prediction, error)
}

// ContactUsecase は問い合わせフォームの送信処理を定義します。
type ContactUsecase interface {
	Submit(ctx context.Context, msg *contactusecase.Message) error
}

// Handler はHTMLページのHTTPリクエストを処理します。
type Handler struct {
	predictor PredictUsecase
	contact   ContactUsecase
	brands    catalog.BrandMap
	now       func() time.Time
}

// NewHandler はHandlerの新しいインスタンスを生成します。
// nowはフォームの年レンジ算出用で、nilの場合はtime.Nowを使用します。
func NewHandler(predictor PredictUsecase, contact ContactUsecase, brands catalog.BrandMap, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{predictor: predictor, contact: contact, brands: brands, now: now}
}

// base はどのページ描画でも共通のテンプレート変数を組み立てます。
func (h *Handler) base(c *gin.Context) gin.H {
	kind, message, _ := web.TakeFlash(c)
	return gin.H{
		"UserName":     c.GetString(authmw.ContextUserName),
		"CurrentYear":  h.now().Year(),
		"FlashKind":    kind,
		"FlashMessage": message,
	}
}

// Home はホームページを表示します。
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", h.base(c))
}

// PredictPage は予測フォームページを表示します。
func (h *Handler) PredictPage(c *gin.Context) {
	data := h.base(c)
	data["Brands"] = h.brands
	c.HTML(http.StatusOK, "index.html", data)
}

// Analysis は分析ページを表示します。
func (h *Handler) Analysis(c *gin.Context) {
	c.HTML(http.StatusOK, "analysis.html", h.base(c))
}

// ComparePage は比較フォームページを表示します。
func (h *Handler) ComparePage(c *gin.Context) {
	data := h.base(c)
	data["Brands"] = h.brands
	c.HTML(http.StatusOK, "compare.html", data)
}

// Compare は比較フォームの送信を処理します。
// "a_"/"b_"のプレフィックスで区別された2組のフィールドをそれぞれ独立に
// 予測し、並べて表示します。
func (h *Handler) Compare(c *gin.Context) {
	data := h.base(c)
	data["Brands"] = h.brands

	listingA, errA := entity.ListingFromValues(c.PostForm, "a_")
	listingB, errB := entity.ListingFromValues(c.PostForm, "b_")
	if errA != nil || errB != nil {
		data["FlashKind"] = "error"
		data["FlashMessage"] = "Error: Could not make comparison. Please check all inputs."
		c.HTML(http.StatusOK, "compare.html", data)
		return
	}

	predA, errA := h.predictor.Predict(c.Request.Context(), listingA)
	predB, errB := h.predictor.Predict(c.Request.Context(), listingB)
	if errA != nil || errB != nil {
		slog.Error("comparison failed", "error_a", errA, "error_b", errB)
		data["FlashKind"] = "error"
		data["FlashMessage"] = "Error: Could not make comparison. Please check all inputs."
		c.HTML(http.StatusOK, "compare.html", data)
		return
	}

	data["FlashKind"] = "success"
	data["FlashMessage"] = "Comparison successful!"
	data["PriceA"] = predA.Price
	data["PriceB"] = predB.Price
	c.HTML(http.StatusOK, "compare.html", data)
}

// ContactPage は問い合わせフォームページを表示します。
func (h *Handler) ContactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", h.base(c))
}

// Contact は問い合わせフォームの送信を処理します。
// メール送信失敗は致命的ではなく、フラッシュメッセージで利用者へ通知します。
func (h *Handler) Contact(c *gin.Context) {
	msg := &contactusecase.Message{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Subject: c.PostForm("subject"),
		Body:    c.PostForm("message"),
	}

	if err := h.contact.Submit(c.Request.Context(), msg); err != nil {
		slog.Error("contact form delivery failed", "error", err, "from", msg.Email)
		web.Flash(c, "error", "Error sending message. Please check server logs and configuration.")
	} else {
		web.Flash(c, "success", "Message sent successfully! Please check your email for a confirmation.")
	}
	c.Redirect(http.StatusFound, "/contact")
}
