// Package usecase は価格予測パイプラインのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"carprice_backend/internal/feature/pricing/domain/entity"
)

// ErrModelUnavailable はモデルが読み込まれていない状態での予測要求に返されます。
var ErrModelUnavailable = errors.New("prediction model is not available")

// Regressor は学習済み回帰モデルを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Regressor interface {
	// Predict は特徴量ベクトルから販売価格を推定します。
	Predict(features []float64) float64
}

// CategoryEncoder は1カラム分のカテゴリ→整数コード変換を抽象化します。
type CategoryEncoder interface {
	// Transform は値のコードと、学習時に既知だったかどうかを返します。
	Transform(value string) (int, bool)
}

// predictUsecase は予測パイプラインの推論コンテキストです。
// 起動時に一度構築され、以降は不変・読み取り専用で全リクエストに共有されます。
type predictUsecase struct {
	model    Regressor
	encoders map[string]CategoryEncoder
	columns  []string
	now      func() time.Time
}

// NewPredictUsecase はpredictUsecaseの新しいインスタンスを生成します。
// nowはCar_Age算出用の現在時刻で、nilの場合はtime.Nowを使用します。
func NewPredictUsecase(model Regressor, encoders map[string]CategoryEncoder, columns []string, now func() time.Time) (*predictUsecase, error) {
	if model == nil || len(columns) == 0 {
		return nil, ErrModelUnavailable
	}
	// カラム順とエンコーダの整合性チェック。
	// 不一致のまま予測すると結果が静かに壊れるため、ここで大きく失敗させる。
	known := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, dup := known[col]; dup {
			return nil, fmt.Errorf("duplicate feature column %q", col)
		}
		known[col] = struct{}{}
	}
	for col := range encoders {
		if _, ok := known[col]; !ok {
			return nil, fmt.Errorf("encoder column %q is not part of the model columns", col)
		}
	}
	if now == nil {
		now = time.Now
	}
	return &predictUsecase{
		model:    model,
		encoders: encoders,
		columns:  columns,
		now:      now,
	}, nil
}

// Predict はリスティングから販売価格を推定します。
//
// パイプライン:
//  1. Car_Age = 現在年 - Year を導出
//  2. カテゴリ値をエンコード（未知の値はコード0にフォールバックし、結果に記録）
//  3. 学習時と同一の順序で特徴量ベクトルを組み立て（未定義カラムは0）
//  4. モデルを1回呼び出し、0以上にクランプして小数第2位に丸める
func (u *predictUsecase) Predict(ctx context.Context, listing *entity.Listing) (*entity.Prediction, error) {
	if u.model == nil {
		return nil, ErrModelUnavailable
	}

	carAge := u.now().Year() - listing.Year

	features := map[string]float64{
		entity.ColPresentPrice:    listing.PresentPrice,
		entity.ColKmsDriven:       float64(listing.KmsDriven),
		entity.ColOwner:           float64(listing.Owner),
		entity.ColCarAge:          float64(carAge),
		entity.ColMileage:         listing.Mileage,
		entity.ColEnginePower:     float64(listing.EnginePower),
		entity.ColMaintenanceCost: float64(listing.MaintenanceCost),
		entity.ColInsuranceAge:    float64(listing.InsuranceAge),
		entity.ColAccidents:       float64(listing.Accidents),
	}

	fallbacks := map[string]string{}
	for _, col := range entity.CategoricalColumns {
		encoder, ok := u.encoders[col]
		if !ok {
			slog.Warn("no encoder for categorical column", "column", col)
			continue
		}
		value := listing.Categorical(col)
		code, known := encoder.Transform(value)
		if !known {
			// 未知カテゴリはリクエストを失敗させず、コード0へ縮退する
			slog.Warn("unknown category, falling back to 0", "column", col, "value", value)
			fallbacks[col] = value
			code = 0
		}
		features[col] = float64(code)
	}

	// 学習時のカラム順で特徴量ベクトルを組み立てる
	vector := make([]float64, len(u.columns))
	for i, col := range u.columns {
		vector[i] = features[col] // 未定義カラムはゼロ値のまま
	}

	raw := u.model.Predict(vector)
	price := math.Round(math.Max(0, raw)*100) / 100

	return &entity.Prediction{
		Price:        price,
		PresentPrice: listing.PresentPrice,
		Fallbacks:    fallbacks,
	}, nil
}
