package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/auth"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/transport/http/handler"
	mdw "github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/transport/http/middleware"
)

// NewEngine 按固定路由表挂载全部操作；公开/鉴权只差一个 AuthJWT 分组
func NewEngine(l *zap.Logger, uh *handler.UserHandler, ch *handler.CardHandler, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := r.Group("/users")
	{
		users.POST("", uh.Register)
		users.POST("/login", uh.Login)

		authed := users.Group("")
		authed.Use(mdw.AuthJWT(jwter))
		authed.GET("", uh.List)
		authed.GET("/:userId", uh.Get)
		authed.PUT("/:userId", uh.Edit)
		authed.PATCH("/:userId", uh.ToggleBusiness)
		authed.DELETE("/:userId", uh.Delete)
	}

	cards := r.Group("/cards")
	{
		cards.GET("", ch.List)
		cards.GET("/:cardId", ch.Get)

		authed := cards.Group("")
		authed.Use(mdw.AuthJWT(jwter))
		authed.POST("", ch.Create)
		authed.GET("/my-cards", ch.ListMine)
		authed.PUT("/changeBizNumber/:cardId", ch.ChangeBizNumber)
		authed.PUT("/:cardId", ch.Edit)
		authed.PATCH("/:cardId", ch.ToggleLike)
		authed.DELETE("/:cardId", ch.Delete)
	}

	return r
}
