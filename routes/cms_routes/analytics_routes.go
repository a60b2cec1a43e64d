package cms_routes

import (
	"github.com/StickerShuttle/shuttle-cms-backend/controllers/cms/analytics_controller"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(admin *gin.RouterGroup) {
	admin.GET("/analytics", analytics_controller.GetAnalytics)
}
