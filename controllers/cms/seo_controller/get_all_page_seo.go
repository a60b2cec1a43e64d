package seo_controller

import (
	"net/http"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAllPageSEO godoc
// @Summary List page SEO entries
// @Tags Admin - SEO
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.PageSEO}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/seo [get]
func GetAllPageSEO(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	pages := []models.PageSEO{}
	if err := config.DB.WithContext(ctx).Order("page_path ASC").Find(&pages).Error; err != nil {
		config.Log.Error("[admin.seo] list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch page SEO"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Page SEO fetched successfully", pages))
}
