package middleware

import (
	"net/http"
	"strings"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// pathToResourceType maps route segments to resource types
var pathToResourceType = map[string]string{
	"orders": models.ResourceTypeOrder,
	"alerts": models.ResourceTypeAlert,
	"seo":    models.ResourceTypeSEO,
	"blog":   models.ResourceTypeBlog,
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	http.MethodPost:   "created",
	http.MethodPatch:  "updated",
	http.MethodPut:    "updated",
	http.MethodDelete: "deleted",
}

// routeActions names sub-resource actions more precisely than the verb map.
// A "METHOD segment" key beats a bare segment key.
var routeActions = map[string]string{
	"status":        "updated_order_status",
	"proofs":        "sent_proofs",
	"DELETE proofs": "cleared_proofs",
	"packing-slip":  "printed_packing_slip",
}

// ActivityLoggingMiddleware records every non-GET admin request after it
// completes. Must run after AdminAuthMiddleware.
func ActivityLoggingMiddleware(db func() *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		adminID, adminEmail, ok := SessionFromContext(c)
		if !ok {
			config.Log.Warn("[activity-logging] admin info not in context", zap.String("path", c.Request.URL.Path))
			c.Next()
			return
		}

		route := c.FullPath()
		resourceType, action := describeRoute(route, c.Request.Method)
		if resourceType == "" {
			c.Next()
			return
		}

		c.Next()

		statusCode := c.Writer.Status()
		entry := models.ActivityLog{
			AdminID:      adminID,
			AdminEmail:   adminEmail,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			Status:       models.StatusSuccess,
			StatusCode:   statusCode,
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
		}
		if statusCode < 200 || statusCode >= 300 {
			entry.Status = models.StatusFailed
		}
		if entry.ResourceID == "" {
			entry.ResourceID = c.GetString(CtxActivityResourceID)
		}

		services.RecordActivity(c.Request.Context(), db(), entry)
	}
}

// describeRoute derives the resource type and action from a route template
// like /api/v1/admin/orders/:id/status.
func describeRoute(route, method string) (resourceType, action string) {
	parts := strings.Split(strings.Trim(route, "/"), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if rt, ok := pathToResourceType[parts[i]]; ok {
			resourceType = rt
			break
		}
	}
	if resourceType == "" {
		return "", ""
	}

	last := parts[len(parts)-1]
	if a, ok := routeActions[method+" "+last]; ok {
		return resourceType, a
	}
	if a, ok := routeActions[last]; ok {
		return resourceType, a
	}

	verb := methodToActionVerb[method]
	if verb == "" {
		verb = strings.ToLower(method)
	}
	return resourceType, verb + "_" + resourceType
}
