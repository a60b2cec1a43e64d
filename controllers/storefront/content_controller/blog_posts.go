package content_controller

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetPublishedPosts godoc
// @Summary Published blog posts
// @Tags Storefront - Content
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(12)
// @Param tag query string false "Only posts with this tag"
// @Success 200 {object} models.ApiResponse{data=[]models.BlogPost,meta=models.Pagination}
// @Router /blog [get]
func GetPublishedPosts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 12
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	q := config.DB.WithContext(ctx).Model(&models.BlogPost{}).Where("published = ?", true)
	if tag := strings.ToLower(strings.TrimSpace(c.Query("tag"))); tag != "" {
		q = q.Where("tags @> ?", `["`+strings.ReplaceAll(tag, `"`, ``)+`"]`)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		config.Log.Error("[storefront.blog] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	posts := []models.BlogPost{}
	if err := q.Order("published_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&posts).Error; err != nil {
		config.Log.Error("[storefront.blog] list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	meta := models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Posts fetched successfully", posts, &meta))
}

// GetPostBySlug godoc
// @Summary Published blog post by slug
// @Tags Storefront - Content
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.ApiResponse{data=models.BlogPost}
// @Failure 404 {object} models.ApiResponse
// @Router /blog/{slug} [get]
func GetPostBySlug(c *gin.Context) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var post models.BlogPost
	err := config.DB.WithContext(ctx).
		Where("slug = ? AND published = ?", slug, true).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		return
	}
	if err != nil {
		config.Log.Error("[storefront.blog] get failed", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch post"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post fetched successfully", post))
}
