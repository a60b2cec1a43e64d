package cms_routes

import (
	"github.com/StickerShuttle/shuttle-cms-backend/controllers/cms/activity_controller"
	"github.com/gin-gonic/gin"
)

func SetupActivityRoutes(admin *gin.RouterGroup) {
	admin.GET("/activity", activity_controller.GetActivityLogs)
}
