package cms_routes

import (
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/middleware"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes mounts /admin behind the session check, the admin
// allow-list, the rate limiter and activity logging.
func SetupAdminRoutes(rg *gin.RouterGroup, verifier services.SessionVerifier, policy config.AdminPolicy) {
	admin := rg.Group("/admin")
	admin.Use(
		middleware.AdminAuthMiddleware(verifier, policy),
		middleware.RateLimiter(config.RedisClient, config.App.RateLimitPerMinute, time.Minute),
		middleware.ActivityLoggingMiddleware(func() *gorm.DB { return config.DB }),
	)

	// ════════════════════════════════════════════════════════════
	// Orders, analytics, content, audit trail
	// ════════════════════════════════════════════════════════════
	SetupOrderRoutes(admin)
	SetupAnalyticsRoutes(admin)
	SetupContentRoutes(admin)
	SetupActivityRoutes(admin)
}
