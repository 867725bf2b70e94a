package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "billkit/docs"
	"billkit/internal/handler"
	"billkit/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	logger *zap.Logger,
	corsOrigins []string,
	invoiceH *handler.InvoiceHandler,
	recurringH *handler.RecurringHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	v1.GET("/amount-in-words", invoiceH.AmountInWords)

	// Invoices
	invoices := v1.Group("/invoices")
	invoices.POST("/compute", invoiceH.Compute)
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.POST("/:id/status", invoiceH.TransitionStatus)

	// Recurring profiles
	profiles := v1.Group("/recurring-profiles")
	profiles.POST("", recurringH.Create)
	profiles.GET("", recurringH.List)
	profiles.GET("/:id", recurringH.GetByID)
	profiles.GET("/:id/generations", recurringH.Generations)
	profiles.POST("/:id/pause", recurringH.Pause)
	profiles.POST("/:id/resume", recurringH.Resume)
	profiles.POST("/:id/stop", recurringH.Stop)
	profiles.POST("/:id/tick", recurringH.Tick)

	return r
}
