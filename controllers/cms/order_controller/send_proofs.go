package order_controller

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/middleware"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// SendProofsResponse is the proof upload result.
type SendProofsResponse struct {
	Order     models.OrderView `json:"order"`
	Uploaded  int              `json:"uploaded"`
	EmailSent bool             `json:"email_sent"`
}

// SendProofs godoc
// @Summary Send design proofs
// @Description Upload one or more proof files (png, jpg, webp, pdf, svg; 10MB each), mark the order awaiting approval and email the customer.
// @Tags Admin - Orders
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param files[] formData file true "Proof files"
// @Param notes formData string false "Notes for the customer"
// @Success 200 {object} models.ApiResponse{data=SendProofsResponse}
// @Failure 400 {object} models.ApiResponse "Invalid files"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 503 {object} models.ApiResponse "File storage not configured"
// @Router /admin/orders/{id}/proofs [post]
func SendProofs(c *gin.Context) {
	const tag = "[admin.order.proofs]"

	order, ok := loadOrder(c, tag)
	if !ok {
		return
	}

	uploader, err := services.GetFileUploader()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "File storage is not configured"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Expected multipart form data"))
		return
	}
	files := form.File["files[]"]
	if len(files) == 0 {
		files = form.File["files"]
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At least one proof file is required"))
		return
	}

	// Validate everything before the first upload so a bad file never
	// leaves a half-sent batch behind.
	heads := make([][]byte, len(files))
	for i, fh := range files {
		head, err := readHead(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read "+fh.Filename))
			return
		}
		if _, err := services.ValidateUpload(fh.Filename, fh.Size, head); err != nil {
			status, msg := services.ResponseFor(err, "Invalid file "+fh.Filename)
			c.JSON(status, models.ErrorResponse(c, msg))
			return
		}
		heads[i] = head
	}

	_, adminEmail, _ := middleware.SessionFromContext(c)
	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	proofs := append([]models.ProofFile{}, order.Proofs...)
	var stored []string
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			services.DiscardUploads(ctx, uploader, stored...)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read "+fh.Filename))
			return
		}
		uploaded, err := uploader.UploadFile(ctx, f, services.UploadOptions{Folder: "proofs/" + order.ID})
		f.Close()
		if err != nil {
			services.DiscardUploads(ctx, uploader, stored...)
			config.Log.Error(tag+" upload failed", zap.String("id", order.ID), zap.String("file", fh.Filename), zap.Error(err))
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to upload "+fh.Filename))
			return
		}
		stored = append(stored, uploaded.PublicID)
		proofs = append(proofs, models.ProofFile{
			URL:        uploaded.URL,
			PublicID:   uploaded.PublicID,
			Filename:   fh.Filename,
			UploadedAt: time.Now().UTC(),
			UploadedBy: adminEmail,
		})
	}

	updates := map[string]any{
		"proofs":       datatypes.NewJSONSlice(proofs),
		"proof_status": models.ProofAwaitingApproval,
	}
	notes := strings.TrimSpace(c.PostForm("notes"))
	if notes != "" {
		updates["proof_notes"] = notes
	}

	if err := config.DB.WithContext(ctx).Model(&models.Order{ID: order.ID}).Updates(updates).Error; err != nil {
		services.DiscardUploads(ctx, uploader, stored...)
		config.Log.Error(tag+" save failed", zap.String("id", order.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save proofs"))
		return
	}

	order.Proofs = proofs
	status := models.ProofAwaitingApproval
	order.ProofStatus = &status
	if notes != "" {
		order.ProofNotes = &notes
	}

	emailSent := notifyCustomer(c, *order, files, notes, tag)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Proofs sent successfully", SendProofsResponse{
		Order:     services.BuildOrderView(*order),
		Uploaded:  len(files),
		EmailSent: emailSent,
	}))
}

func readHead(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return bytes.Clone(buf[:n]), nil
}

// notifyCustomer sends the proof email; a failure is logged, never returned.
func notifyCustomer(c *gin.Context, order models.Order, files []*multipart.FileHeader, notes, tag string) bool {
	mailer := services.GetProofMailer()
	if mailer == nil || order.CustomerEmail == "" {
		return false
	}

	urls := make([]string, 0, len(files))
	for _, p := range order.Proofs[len(order.Proofs)-len(files):] {
		urls = append(urls, p.URL)
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err := mailer.SendProofReadyEmail(ctx, services.ProofReadyEmailData{
		CustomerName:  strings.TrimSpace(order.CustomerFirstName + " " + order.CustomerLastName),
		CustomerEmail: order.CustomerEmail,
		OrderNumber:   services.DisplayNumber(order),
		Notes:         notes,
		ProofURLs:     urls,
	})
	if err != nil {
		config.Log.Warn(tag+" proof email failed", zap.String("id", order.ID), zap.Error(err))
		return false
	}
	return true
}
