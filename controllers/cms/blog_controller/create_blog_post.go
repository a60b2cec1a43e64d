package blog_controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/middleware"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// CreateBlogPost godoc
// @Summary Create a blog post
// @Description The slug is derived from the title unless given; it must be unique.
// @Tags Admin - Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body models.CreateBlogPostRequest true "Post"
// @Success 201 {object} models.ApiResponse{data=models.BlogPost}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Slug already exists"
// @Router /admin/blog [post]
func CreateBlogPost(c *gin.Context) {
	var req models.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	slug := slugFor(req.Slug, req.Title)
	taken, err := slugTaken(ctx, slug, uuid.Nil)
	if err != nil {
		config.Log.Error("[admin.blog] slug check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if taken {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A post with slug "+slug+" already exists"))
		return
	}

	author := strings.TrimSpace(req.Author)
	if author == "" {
		_, author, _ = middleware.SessionFromContext(c)
	}

	post := models.BlogPost{
		Slug:          slug,
		Title:         strings.TrimSpace(req.Title),
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		Author:        author,
		Tags:          datatypes.NewJSONSlice(cleanTags(req.Tags)),
		Published:     req.Published,
	}
	if post.Published {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	if err := config.DB.WithContext(ctx).Create(&post).Error; err != nil {
		config.Log.Error("[admin.blog] create failed", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create blog post"))
		return
	}

	c.Set(middleware.CtxActivityResourceID, post.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Blog post created successfully", post))
}
