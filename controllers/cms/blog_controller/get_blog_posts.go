package blog_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetBlogPosts godoc
// @Summary List blog posts (CMS)
// @Description Drafts and published posts, newest first.
// @Tags Admin - Blog
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param published query bool false "Filter by published flag"
// @Success 200 {object} models.ApiResponse{data=[]models.BlogPost,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/blog [get]
func GetBlogPosts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	q := config.DB.WithContext(ctx).Model(&models.BlogPost{})
	if raw := c.Query("published"); raw != "" {
		if published, err := strconv.ParseBool(raw); err == nil {
			q = q.Where("published = ?", published)
		}
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		config.Log.Error("[admin.blog] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch blog posts"))
		return
	}

	posts := []models.BlogPost{}
	if err := q.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&posts).Error; err != nil {
		config.Log.Error("[admin.blog] list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch blog posts"))
		return
	}

	meta := models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Blog posts fetched successfully", posts, &meta))
}
