package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/metrics"
	"github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/server/http/handlers"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
// The admin group is only registered when an admin key is configured.
func Setup(facade handlers.OrderDeskFacade, admin *auth.AdminKey, m *metrics.Metrics, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	engine.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	accountHandler := handlers.NewAccountHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")

	accounts := api.Group("/accounts")
	accounts.POST("", accountHandler.Create)
	accounts.GET("", accountHandler.List)
	accounts.GET("/:id", accountHandler.Get)
	accounts.POST("/:id/deactivate", accountHandler.Deactivate)
	accounts.GET("/:id/orders", accountHandler.Orders)
	accounts.GET("/:id/total", accountHandler.Total)

	orders := api.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id/status", orderHandler.SetStatus)
	orders.POST("/:id/cancel", orderHandler.Cancel)

	if admin.Enabled() {
		adminHandler := handlers.NewAdminHandler(facade)
		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.AdminRequired(admin))
		adminGroup.POST("/reset", adminHandler.Reset)
	} else {
		logger.Info("admin endpoints disabled: no admin key configured")
	}

	return engine
}
