package cms_routes

import (
	"github.com/StickerShuttle/shuttle-cms-backend/controllers/cms/alert_controller"
	"github.com/StickerShuttle/shuttle-cms-backend/controllers/cms/blog_controller"
	"github.com/StickerShuttle/shuttle-cms-backend/controllers/cms/seo_controller"
	"github.com/gin-gonic/gin"
)

// SetupContentRoutes registers sitewide alerts, page SEO and blog CRUD.
func SetupContentRoutes(admin *gin.RouterGroup) {
	alerts := admin.Group("/alerts")
	{
		alerts.GET("", alert_controller.GetAlerts)
		alerts.POST("", alert_controller.CreateAlert)
		alerts.PATCH("/:id", alert_controller.UpdateAlert)
		alerts.DELETE("/:id", alert_controller.DeleteAlert)
	}

	seo := admin.Group("/seo")
	{
		seo.GET("", seo_controller.GetAllPageSEO)
		seo.PUT("", seo_controller.UpsertPageSEO)
		seo.DELETE("/:id", seo_controller.DeletePageSEO)
	}

	blog := admin.Group("/blog")
	{
		blog.GET("", blog_controller.GetBlogPosts)
		blog.POST("", blog_controller.CreateBlogPost)
		blog.PATCH("/:id", blog_controller.UpdateBlogPost)
		blog.DELETE("/:id", blog_controller.DeleteBlogPost)
	}
}
