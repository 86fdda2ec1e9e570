// Package handler はpricingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"carprice_backend/internal/feature/pricing/domain/entity"
	"carprice_backend/internal/feature/pricing/transport/http/dto"
	"carprice_backend/internal/feature/pricing/usecase"
)

// PredictUsecase は予測パイプラインのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PredictUsecase interface {
	Predict(ctx context.Context, listing *entity.Listing) (*entity.Prediction, error)
}

// PredictHandler は価格予測のHTTPリクエストを処理します。
type PredictHandler struct {
	uc PredictUsecase
}

// NewPredictHandler は指定されたusecaseでPredictHandlerの新しいインスタンスを生成します。
func NewPredictHandler(uc PredictUsecase) *PredictHandler {
	return &PredictHandler{uc: uc}
}

// APIPredict は単一予測のJSONエンドポイントを処理します。
//
// エンドポイント例:
// POST /api/predict  body: {"Year": 2018, "Present_Price(Lakhs)": 8.0, ...}
func (h *PredictHandler) APIPredict(c *gin.Context) {
	var req dto.PredictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.PredictErrRes{Success: false, Error: "invalid request body"})
		return
	}

	listing, err := entity.ListingFromValues(req.Get, "")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.PredictErrRes{Success: false, Error: "Invalid data received by server."})
		return
	}

	prediction, err := h.uc.Predict(c.Request.Context(), listing)
	if err != nil {
		if errors.Is(err, usecase.ErrModelUnavailable) {
			c.JSON(http.StatusServiceUnavailable, dto.PredictErrRes{Success: false, Error: "prediction model is not available"})
			return
		}
		slog.Error("prediction failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.PredictErrRes{Success: false, Error: "prediction failed"})
		return
	}

	c.JSON(http.StatusOK, dto.PredictRes{
		Success:        true,
		PredictedPrice: prediction.Price,
		ShowroomPrice:  prediction.PresentPrice,
		Details:        req,
		Fallbacks:      prediction.Fallbacks,
	})
}
