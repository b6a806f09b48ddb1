package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/auth"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/cache"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/config"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/database"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/logger"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/server"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/domain"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/repo"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/seed"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/service"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/transport/http/handler"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/transport/http/router"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	// 自动迁移；users.email / cards.biz_number 的唯一索引在这里落地
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Card{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// JWT
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// 可选的单卡缓存
	var cardCache *cache.Cache
	if cfg.Redis.Addr != "" {
		cardCache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// 依赖
	userRepo := repo.NewUserRepo(db)
	cardRepo := repo.NewCardRepo(db)
	userSvc := service.NewUserService(userRepo, utils.Bcrypt{}, jwter, log)
	cardSvc := service.NewCardService(cardRepo, cardCache, log)
	uh := handler.NewUserHandler(userSvc)
	ch := handler.NewCardHandler(cardSvc)

	// 初始数据：fire-and-forget，单条失败不影响其它条目
	if cfg.Seed.Enable {
		go func() {
			results := seed.Run(context.Background(), userSvc, cardSvc, userRepo, log)
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
			}
			log.Info("seed finished", zap.Int("items", len(results)), zap.Int("failed", failed))
		}()
	}

	// 路由
	r := router.NewEngine(log, uh, ch, jwter)

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("bcard api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("bcard api start FAILED", zap.Error(err))
		}
	}()
	log.Info("bcard api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("bcard api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
