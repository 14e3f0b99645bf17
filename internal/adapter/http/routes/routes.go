package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "nanny_booking/docs"
	"nanny_booking/internal/adapter/http/handlers"
	"nanny_booking/internal/adapter/http/middleware"
	"nanny_booking/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Preferences *handlers.PreferencesHandler
	Pricing     *handlers.PricingHandler
	Bookings    *handlers.BookingHandler
}

// Run wires the application and serves HTTP until ctx is cancelled. Pending
// profile writes are cancelled after the server has drained.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	app, err := newContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.close(logger)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           NewRouter(app.handlers, cfg.RateLimitPerMinute, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http server forced to shut down", zap.Error(err))
	}
	return nil
}

// NewRouter builds the gin engine. Booking routes require a session header;
// pricing and submission are also rate limited per session.
func NewRouter(h Handlers, rateLimitPerMinute int, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	session := v1.Group("", middleware.Identity())
	addPreferencesRoutes(session, h.Preferences)

	limited := session.Group("", middleware.RateLimit(rateLimitPerMinute, logger))
	addPricingRoutes(limited, h.Pricing)
	addBookingRoutes(limited, h.Bookings)

	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
