package order_controller

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/middleware"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UploadReplacementFile godoc
// @Summary Upload a replacement design file
// @Description The order's customer sends a new artwork file for one line item. The proof goes back to changes requested.
// @Tags Storefront - Orders
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param itemId path string true "Order item ID"
// @Param file formData file true "Replacement artwork"
// @Success 200 {object} models.ApiResponse{data=models.OrderView}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Order or item not found"
// @Failure 503 {object} models.ApiResponse "File storage not configured"
// @Router /orders/{id}/items/{itemId}/replacement-file [post]
func UploadReplacementFile(c *gin.Context) {
	const tag = "[storefront.order.replacement]"

	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}
	itemID := c.Param("itemId")

	_, email, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	order, err := services.FindOrder(ctx, config.DB, orderID)
	if err != nil {
		status, msg := services.ResponseFor(err, "Failed to fetch order")
		if status >= http.StatusInternalServerError {
			config.Log.Error(tag+" find order failed", zap.String("id", orderID), zap.Error(err))
		}
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	// Someone else's order looks exactly like a missing one.
	if !strings.EqualFold(strings.TrimSpace(order.CustomerEmail), strings.TrimSpace(email)) {
		config.Log.Warn(tag+" ownership mismatch", zap.String("id", orderID), zap.String("session_email", email))
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	item := findItem(order.Items, itemID)
	if item == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, services.ErrOrderItemNotFound.Error()))
		return
	}

	uploader, err := services.GetFileUploader()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "File storage is not configured"))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A file is required"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read file"))
		return
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read file"))
		return
	}
	head = head[:n]
	if _, err := services.ValidateUpload(fh.Filename, fh.Size, head); err != nil {
		status, msg := services.ResponseFor(err, "Invalid file")
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	uploaded, err := uploader.UploadFile(ctx, io.MultiReader(bytes.NewReader(head), f), services.UploadOptions{
		Folder: "replacements/" + order.ID,
	})
	if err != nil {
		config.Log.Error(tag+" upload failed", zap.String("id", orderID), zap.Error(err))
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to upload file"))
		return
	}

	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.OrderItem{ID: item.ID}).
			Update("customer_replacement_file", uploaded.URL).Error; err != nil {
			return err
		}
		return tx.Model(&models.Order{ID: order.ID}).
			Update("proof_status", models.ProofChangesRequested).Error
	})
	if err != nil {
		services.DiscardUploads(ctx, uploader, uploaded.PublicID)
		config.Log.Error(tag+" save failed", zap.String("id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save replacement file"))
		return
	}

	item.CustomerReplacementFile = &uploaded.URL
	status := models.ProofChangesRequested
	order.ProofStatus = &status

	config.Log.Info(tag+" replacement uploaded", zap.String("id", orderID), zap.String("item", item.ID))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Replacement file uploaded", services.BuildOrderView(*order)))
}

func findItem(items []models.OrderItem, id string) *models.OrderItem {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}
