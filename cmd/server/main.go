package main

import (
	"log"
	"log/slog"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"carprice_backend/internal/app/di"
	"carprice_backend/internal/app/router"
	"carprice_backend/internal/config"
	authadapters "carprice_backend/internal/feature/auth/adapters"
	authhandler "carprice_backend/internal/feature/auth/transport/handler"
	authusecase "carprice_backend/internal/feature/auth/usecase"
	"carprice_backend/internal/feature/catalog"
	contactusecase "carprice_backend/internal/feature/contact/usecase"
	"carprice_backend/internal/feature/pages"
	predicthandler "carprice_backend/internal/feature/pricing/transport/handler"
	infradb "carprice_backend/internal/platform/db"
	jwtmw "carprice_backend/internal/platform/jwt"
	"carprice_backend/internal/platform/mail"
	infraredis "carprice_backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()

	// db
	db := infradb.OpenDB(cfg)

	// Redis
	var rdb *redisv9.Client
	if cfg.RedisHost == "" {
		slog.Info("Redis not configured. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// 推論コンテキスト（モデル・エンコーダ・カラム順）を起動時に一度構築する
	predictor, err := di.NewPredictor(cfg.ModelPath, rdb, 0)
	if err != nil {
		// モデルなしでも起動はするが、全予測リクエストは即時失敗する
		slog.Error("model artifact not loaded; predictions will fail", "path", cfg.ModelPath, "error", err)
		predictor = di.UnavailablePredictor()
	}

	// ブランド→車種マップ（予測フォーム用）
	brands := catalog.LoadBrandMap(cfg.DatasetPath)

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)

	// Usecase
	jwtGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen, cfg.SessionTTL)
	contactUC := contactusecase.NewContactUsecase(mail.NewMailer(cfg), cfg.AdminEmail)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, int(cfg.SessionTTL/time.Second))
	predictH := predicthandler.NewPredictHandler(predictor)
	pageH := pages.NewHandler(predictor, contactUC, brands, nil)
	brandsH := catalog.NewHandler(brands)

	// ルータ生成
	r := router.NewRouter(authUC, authH, predictH, pageH, brandsH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
