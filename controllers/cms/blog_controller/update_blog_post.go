package blog_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UpdateBlogPost godoc
// @Summary Update a blog post
// @Description Partial update. Publishing for the first time stamps published_at.
// @Tags Admin - Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param post body models.UpdateBlogPostRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.BlogPost}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/blog/{id} [patch]
func UpdateBlogPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid post ID"))
		return
	}

	var req models.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var post models.BlogPost
	if err := config.DB.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Blog post not found"))
			return
		}
		config.Log.Error("[admin.blog] find failed", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		slug := slugFor(*req.Slug, post.Title)
		if slug != post.Slug {
			taken, err := slugTaken(ctx, slug, post.ID)
			if err != nil {
				config.Log.Error("[admin.blog] slug check failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
				return
			}
			if taken {
				c.JSON(http.StatusConflict, models.ErrorResponse(c, "A post with slug "+slug+" already exists"))
				return
			}
			updates["slug"] = slug
		}
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.FeaturedImage != nil {
		updates["featured_image"] = *req.FeaturedImage
	}
	if req.Author != nil {
		updates["author"] = *req.Author
	}
	if req.Tags != nil {
		updates["tags"] = datatypes.NewJSONSlice(cleanTags(*req.Tags))
	}
	if req.Published != nil {
		updates["published"] = *req.Published
		if *req.Published && post.PublishedAt == nil {
			updates["published_at"] = time.Now().UTC()
		}
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes detected", post))
		return
	}

	if err := config.DB.WithContext(ctx).Model(&post).Updates(updates).Error; err != nil {
		config.Log.Error("[admin.blog] update failed", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update blog post"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Blog post updated successfully", post))
}
