package blog_controller

import (
	"net/http"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DeleteBlogPost godoc
// @Summary Delete a blog post
// @Tags Admin - Blog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/blog/{id} [delete]
func DeleteBlogPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid post ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	res := config.DB.WithContext(ctx).Delete(&models.BlogPost{}, "id = ?", id)
	if res.Error != nil {
		config.Log.Error("[admin.blog] delete failed", zap.String("id", id.String()), zap.Error(res.Error))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete blog post"))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Blog post not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Blog post deleted successfully", gin.H{"id": id}))
}
