package di

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"carprice_backend/internal/feature/pricing/domain/entity"
	pricingusecase "carprice_backend/internal/feature/pricing/usecase"
	"carprice_backend/internal/platform/cache"
	"carprice_backend/internal/platform/ml"
)

// NewPredictor loads the model artifact and assembles the inference context,
// wrapped in a Redis prediction cache when Redis is available.
// The returned predictor is immutable and shared read-only by all requests.
func NewPredictor(modelPath string, rdb *redis.Client, ttl time.Duration) (cache.Predictor, error) {
	artifact, err := ml.LoadArtifact(modelPath)
	if err != nil {
		return nil, err
	}

	encoders := make(map[string]pricingusecase.CategoryEncoder, len(artifact.Mappings))
	for col, enc := range artifact.Mappings {
		encoders[col] = enc
	}

	uc, err := pricingusecase.NewPredictUsecase(artifact.Model, encoders, artifact.Columns, nil)
	if err != nil {
		return nil, err
	}

	return cache.NewCachingPredictor(rdb, ttl, uc, "predictions"), nil
}

// unavailablePredictor fails every request fast when no model was loaded.
type unavailablePredictor struct{}

func (unavailablePredictor) Predict(context.Context, *entity.Listing) (*entity.Prediction, error) {
	return nil, pricingusecase.ErrModelUnavailable
}

// UnavailablePredictor returns a predictor for the model-unavailable startup
// state: the service still serves pages, but every prediction fails fast.
func UnavailablePredictor() cache.Predictor {
	return unavailablePredictor{}
}
