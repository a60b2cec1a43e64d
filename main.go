// @title Sticker Shuttle CMS API
// @version 1.0
// @description Sticker Shuttle admin back office and storefront content API
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/middleware"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/routes/cms_routes"
	"github.com/StickerShuttle/shuttle-cms-backend/routes/storefront_routes"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	app := config.Load()
	config.InitLogger(app.AppEnv)
	defer config.SyncLogger()

	policy, err := config.ResolvePolicy(app)
	if err != nil {
		config.Log.Fatal("Failed to load policy", zap.Error(err))
	}
	adminPolicy := config.NewAdminPolicy(policy.AdminEmails)
	if adminPolicy.Len() == 0 {
		config.Log.Warn("Admin allow-list is empty, every admin request will be refused")
	}
	services.ConfigureSamplePacks(services.NewSamplePackMatcher(policy.SamplePack))

	// Connect to DB
	config.InitDB(app)
	defer config.CloseDB()
	if err := config.Migrate(
		&models.Order{},
		&models.OrderItem{},
		&models.SitewideAlert{},
		&models.PageSEO{},
		&models.BlogPost{},
		&models.ActivityLog{},
	); err != nil {
		config.Log.Fatal("Migration failed", zap.Error(err))
	}

	// Redis connection
	config.ConnectRedis(app)
	defer config.CloseRedis()
	services.InitAnalyticsCache(config.RedisClient)

	// The key set keeps using this context for later JWKS refreshes.
	verifier, err := services.NewJWTService(context.Background(), app.SupabaseJWTSecret, app.SupabaseJWKSURL)
	if err != nil {
		config.Log.Fatal("Failed to initialize session verifier", zap.Error(err))
	}

	services.InitFileUploader(app)
	services.InitProofMailer(app)

	if app.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := setupRouter(app, verifier, adminPolicy)

	srv := &http.Server{
		Addr:              ":" + app.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Log.Info("Server is running", zap.String("addr", "http://localhost:"+app.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	config.Log.Info("Shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Log.Error("Shutdown error", zap.Error(err))
	}
	config.Log.Info("Server shutdown complete")
}

func setupRouter(app config.AppConfig, verifier services.SessionVerifier, policy config.AdminPolicy) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = 32 << 20

	corsCfg := cors.Config{
		AllowOrigins:     app.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", "X-Request-ID", "X-Cache"},
	}

	router.Use(
		gin.Recovery(),
		cors.New(corsCfg),
		middleware.RequestID(),
		middleware.RequestLogger(config.Log),
	)

	router.GET("/healthz", healthz)

	api := router.Group("/api/v1")
	cms_routes.SetupAdminRoutes(api, verifier, policy)
	storefront_routes.SetupStorefrontRoutes(api, verifier)

	return router
}

func healthz(c *gin.Context) {
	ctx, cancel := config.WithCustomTimeout(2 * time.Second)
	defer cancel()

	status := gin.H{"database": "ok", "redis": "disabled"}
	code := http.StatusOK

	if config.Pool == nil {
		status["database"] = "not initialized"
		code = http.StatusServiceUnavailable
	} else if err := config.Pool.Ping(ctx); err != nil {
		status["database"] = err.Error()
		code = http.StatusServiceUnavailable
	}
	if config.RedisClient != nil {
		status["redis"] = "ok"
		if err := config.RedisClient.Ping(ctx).Err(); err != nil {
			status["redis"] = err.Error()
			code = http.StatusServiceUnavailable
		}
	}

	if code != http.StatusOK {
		c.JSON(code, models.ErrorResponse(c, "Service unavailable"))
		config.Log.Warn("[healthz] degraded", zap.Any("status", status))
		return
	}
	c.JSON(code, models.SuccessResponse(c, "ok", status))
}
