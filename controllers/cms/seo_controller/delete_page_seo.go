package seo_controller

import (
	"net/http"

	content_cache "github.com/StickerShuttle/shuttle-cms-backend/cache"
	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DeletePageSEO godoc
// @Summary Delete page SEO
// @Tags Admin - SEO
// @Produce json
// @Security BearerAuth
// @Param id path string true "Page SEO ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/seo/{id} [delete]
func DeletePageSEO(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid page SEO ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	res := config.DB.WithContext(ctx).Delete(&models.PageSEO{}, "id = ?", id)
	if res.Error != nil {
		config.Log.Error("[admin.seo] delete failed", zap.String("id", id.String()), zap.Error(res.Error))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete page SEO"))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Page SEO not found"))
		return
	}

	content_cache.InvalidateSEO()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Page SEO deleted successfully", gin.H{"id": id}))
}
