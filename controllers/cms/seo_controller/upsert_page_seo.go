package seo_controller

import (
	"net/http"

	content_cache "github.com/StickerShuttle/shuttle-cms-backend/cache"
	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/middleware"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

// UpsertPageSEO godoc
// @Summary Create or replace page SEO
// @Description Keyed by page_path; an existing entry for the path is overwritten.
// @Tags Admin - SEO
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param seo body models.UpsertPageSEORequest true "Page SEO"
// @Success 200 {object} models.ApiResponse{data=models.PageSEO}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/seo [put]
func UpsertPageSEO(c *gin.Context) {
	var req models.UpsertPageSEORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	_, email, _ := middleware.SessionFromContext(c)
	page := models.PageSEO{
		PagePath:     utils.NormalizePath(req.PagePath),
		Title:        req.Title,
		Description:  req.Description,
		Keywords:     req.Keywords,
		OGTitle:      req.OGTitle,
		OGImage:      req.OGImage,
		CanonicalURL: req.CanonicalURL,
		Robots:       req.Robots,
		UpdatedBy:    email,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err := config.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "page_path"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "keywords", "og_title", "og_image",
			"canonical_url", "robots", "updated_by", "updated_at",
		}),
	}).Create(&page).Error
	if err != nil {
		config.Log.Error("[admin.seo] upsert failed", zap.String("path", page.PagePath), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save page SEO"))
		return
	}

	// On conflict the generated ID is discarded, so read back the stored row.
	var stored models.PageSEO
	if err := config.DB.WithContext(ctx).First(&stored, "page_path = ?", page.PagePath).Error; err != nil {
		config.Log.Warn("[admin.seo] reload failed", zap.String("path", page.PagePath), zap.Error(err))
	} else {
		page = stored
	}

	content_cache.InvalidateSEO()
	c.Set(middleware.CtxActivityResourceID, page.PagePath)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Page SEO saved successfully", page))
}
