package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/printline/printdesk/internal/server/http/handlers"
	"github.com/printline/printdesk/internal/server/http/middleware"
	"github.com/printline/printdesk/internal/telemetry"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DashboardFacade, logger *slog.Logger, metrics *telemetry.Metrics) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	challanHandler := handlers.NewChallanHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := engine.Group("/api")

	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id", orderHandler.Edit)
	orders.DELETE("/:id", orderHandler.Delete)
	orders.POST("/:id/advance", orderHandler.Advance)
	orders.POST("/:id/revert", orderHandler.Revert)
	orders.PUT("/:id/status", orderHandler.SetStatus)

	challans := api.Group("/challans")
	challans.POST("", challanHandler.Generate)
	challans.GET("", challanHandler.List)
	challans.GET("/draft", challanHandler.Draft)
	challans.PUT("/draft", challanHandler.UpdateDraft)
	challans.DELETE("/draft", challanHandler.ClearDraft)

	return engine
}
