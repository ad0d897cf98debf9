package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/luxe-next/internal/cache"
	"github.com/luxe-next/internal/config"
	publichandlers "github.com/luxe-next/internal/http/handlers/public"
	handlershared "github.com/luxe-next/internal/http/handlers/shared"
	"github.com/luxe-next/internal/http/response"
	"github.com/luxe-next/internal/logger"
	"github.com/luxe-next/internal/provider"
	"github.com/luxe-next/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const healthCheckTimeout = 2 * time.Second

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	h := publichandlers.New(c)
	limiter := NewRateLimiter(cache.Client(), cfg.Redis.Prefix)
	writeCfg := cfg.Security.WriteRateLimit
	reviewCreateLimit := limiter.Limit(NewRateLimitRule("review_create", writeCfg, KeyByIP))
	reviewHelpfulLimit := limiter.Limit(NewRateLimitRule("review_helpful", cfg.Security.HelpfulRateLimit, KeyByIPAndPathID))
	orderCreateLimit := limiter.Limit(NewRateLimitRule("order_create", writeCfg, KeyByIP))
	interactionLimit := limiter.Limit(NewRateLimitRule("interaction_create", writeCfg, KeyByIPAndJSONField("session_id")))

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	if cfg.Telemetry.Enabled {
		r.Use(otelgin.Middleware(telemetry.ServiceName(cfg.Telemetry)))
		r.Use(TraceIDMiddleware())
	}
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/healthz", healthHandler(c))

	apiV1 := r.Group("/api/v1")
	{
		users := apiV1.Group("/users")
		{
			users.GET("", h.ListUsers)
			users.POST("", h.CreateUser)
			users.GET("/:id", h.GetUser)
			users.PUT("/:id", h.UpdateUser)
			users.PATCH("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeleteUser)
		}

		// 商品目录只读
		diamonds := apiV1.Group("/diamonds")
		{
			diamonds.GET("", h.ListDiamonds)
			diamonds.GET("/statistics", h.DiamondStatistics)
			diamonds.GET("/:id", h.GetDiamond)
		}
		settings := apiV1.Group("/settings")
		{
			settings.GET("", h.ListSettings)
			settings.GET("/:id", h.GetSetting)
		}

		configurations := apiV1.Group("/configurations")
		{
			configurations.GET("", h.ListConfigurations)
			configurations.POST("", h.CreateConfiguration)
			configurations.GET("/my_configurations", h.MyConfigurations)
			configurations.GET("/:id", h.GetConfiguration)
			configurations.PUT("/:id", h.UpdateConfiguration)
			configurations.PATCH("/:id", h.UpdateConfiguration)
			configurations.DELETE("/:id", h.DeleteConfiguration)
		}

		favorites := apiV1.Group("/favorites")
		{
			favorites.GET("", h.ListFavorites)
			favorites.POST("", h.CreateFavorite)
			favorites.GET("/my_favorites", h.MyFavorites)
			favorites.GET("/:id", h.GetFavorite)
			favorites.PUT("/:id", h.UpdateFavorite)
			favorites.PATCH("/:id", h.UpdateFavorite)
			favorites.DELETE("/:id", h.DeleteFavorite)
		}

		reviews := apiV1.Group("/reviews")
		{
			reviews.GET("", h.ListReviews)
			reviews.POST("", reviewCreateLimit, h.CreateReview)
			reviews.GET("/product_reviews", h.ProductReviews)
			reviews.GET("/:id", h.GetReview)
			reviews.PUT("/:id", h.UpdateReview)
			reviews.PATCH("/:id", h.UpdateReview)
			reviews.DELETE("/:id", h.DeleteReview)
			reviews.POST("/:id/mark_helpful", reviewHelpfulLimit, h.MarkReviewHelpful)
		}

		orders := apiV1.Group("/orders")
		{
			orders.GET("", h.ListOrders)
			orders.POST("", orderCreateLimit, h.CreateOrder)
			orders.GET("/my_orders", h.MyOrders)
			orders.GET("/:id", h.GetOrder)
			orders.PUT("/:id", h.UpdateOrder)
			orders.PATCH("/:id", h.UpdateOrder)
			orders.DELETE("/:id", h.DeleteOrder)
			orders.PATCH("/:id/update_status", h.UpdateOrderStatus)
		}

		interactions := apiV1.Group("/interactions")
		{
			interactions.GET("", h.ListInteractions)
			interactions.POST("", interactionLimit, h.CreateInteraction)
			interactions.GET("/analytics_summary", h.AnalyticsSummary)
			interactions.GET("/:id", h.GetInteraction)
			interactions.PUT("/:id", h.UpdateInteraction)
			interactions.PATCH("/:id", h.UpdateInteraction)
			interactions.DELETE("/:id", h.DeleteInteraction)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, handlershared.Message("error.not_found"))
	})

	return r
}

// healthHandler 检查数据库与 Redis 连通性
func healthHandler(c *provider.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthCheckTimeout)
		defer cancel()

		status := gin.H{"database": "ok", "redis": "disabled"}
		healthy := true
		if err := pingDatabase(reqCtx, c); err != nil {
			logger.Warnw("health_database_failed", "error", err)
			status["database"] = "unavailable"
			healthy = false
		}
		if cache.Enabled() {
			status["redis"] = "ok"
			if err := cache.Ping(reqCtx); err != nil {
				logger.Warnw("health_redis_failed", "error", err)
				status["redis"] = "unavailable"
				healthy = false
			}
		}
		if !healthy {
			ctx.JSON(http.StatusServiceUnavailable, status)
			return
		}
		ctx.JSON(http.StatusOK, status)
	}
}

func pingDatabase(ctx context.Context, c *provider.Container) error {
	if c == nil || c.DB == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
