// Package db opens the GORM database connection used for the user account and
// session stores.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"carprice_backend/internal/config"
	authadapters "carprice_backend/internal/feature/auth/adapters"
	"carprice_backend/internal/feature/auth/domain/entity"
)

// OpenDB opens the configured database and optionally runs migrations.
// Sqlite is the default driver; postgres and mysql are selected via DB_DRIVER.
// The connection is retried for up to 60 seconds so the service survives a
// database that is still starting.
func OpenDB(cfg *config.Config) *gorm.DB {
	dial := dialector(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dial, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		// マイグレーション（User, Session）
		if err := db.AutoMigrate(
			&entity.User{},
			&authadapters.SessionModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

func dialector(cfg *config.Config) gorm.Dialector {
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		return gpostgres.Open(dsn)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		return gmysql.Open(dsn)
	default:
		return gsqlite.Open(cfg.DBPath)
	}
}
