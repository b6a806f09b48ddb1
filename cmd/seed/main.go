package main

import (
	"context"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/auth"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/config"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/database"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/logger"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/domain"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/repo"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/seed"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/service"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/pkg/utils"
)

// 独立的一次性种子任务：建表、灌入初始数据、打印每条结果后退出
func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Card{}); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	userRepo := repo.NewUserRepo(db)
	cardRepo := repo.NewCardRepo(db)
	userSvc := service.NewUserService(userRepo, utils.Bcrypt{}, jwter, log)
	cardSvc := service.NewCardService(cardRepo, nil, log)

	results := seed.Run(context.Background(), userSvc, cardSvc, userRepo, log)
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.Info("seed finished", zap.Int("items", len(results)), zap.Int("failed", failed))
}
