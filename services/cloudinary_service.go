package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// UploadOptions controls where an upload lands.
type UploadOptions struct {
	Folder   string
	PublicID string
}

// UploadedFile is what the storage backend returns for a stored file.
type UploadedFile struct {
	URL      string
	PublicID string
}

// FileUploader stores proof and artwork files.
type FileUploader interface {
	UploadFile(ctx context.Context, r io.Reader, opts UploadOptions) (UploadedFile, error)
	DeleteFile(ctx context.Context, publicID string) error
	DeleteFolder(ctx context.Context, folder string) error
}

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadFile uploads any supported file type. ResourceType "auto" lets
// Cloudinary keep PDFs and SVGs as-is.
func (s *CloudinaryService) UploadFile(ctx context.Context, r io.Reader, opts UploadOptions) (UploadedFile, error) {
	unique := true
	overwrite := false
	params := uploader.UploadParams{
		Folder:         opts.Folder,
		ResourceType:   "auto",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if opts.PublicID != "" {
		params.PublicID = opts.PublicID
	}

	result, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return UploadedFile{}, fmt.Errorf("failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return UploadedFile{}, fmt.Errorf("upload successful but no URL returned")
	}
	return UploadedFile{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// DeleteFile destroys one stored asset by public id.
func (s *CloudinaryService) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", publicID, err)
	}
	return nil
}

// DiscardUploads deletes assets stored by a request that then failed.
// Errors are logged; the caller is already reporting a failure.
func DiscardUploads(ctx context.Context, u FileUploader, publicIDs ...string) {
	for _, id := range publicIDs {
		if id == "" {
			continue
		}
		if err := u.DeleteFile(ctx, id); err != nil {
			config.Log.Warn("[cloudinary] orphaned upload", zap.String("public_id", id), zap.Error(err))
		}
	}
}

// DeleteFolder removes every asset under folder, then the folder itself.
func (s *CloudinaryService) DeleteFolder(ctx context.Context, folder string) error {
	if _, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{folder},
	}); err != nil {
		return fmt.Errorf("failed to delete assets in folder %s: %w", folder, err)
	}

	// Cloudinary usually drops empty folders on its own.
	if _, err := s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: folder}); err != nil {
		config.Log.Debug("[cloudinary] folder delete skipped", zap.String("folder", folder), zap.Error(err))
	}
	return nil
}

var (
	uploaderMu   sync.RWMutex
	fileUploader FileUploader
)

// InitFileUploader builds the Cloudinary uploader from config. Missing
// credentials leave uploads disabled.
func InitFileUploader(app config.AppConfig) {
	if app.CloudinaryCloudName == "" || app.CloudinaryAPIKey == "" || app.CloudinaryAPISecret == "" {
		config.Log.Warn("Cloudinary credentials not set, proof uploads are disabled")
		return
	}
	svc, err := NewCloudinaryService(app.CloudinaryCloudName, app.CloudinaryAPIKey, app.CloudinaryAPISecret)
	if err != nil {
		config.Log.Error("Failed to initialize Cloudinary", zap.Error(err))
		return
	}
	SetFileUploader(svc)
	config.Log.Info("Cloudinary initialized", zap.String("cloud", app.CloudinaryCloudName))
}

func SetFileUploader(u FileUploader) {
	uploaderMu.Lock()
	defer uploaderMu.Unlock()
	fileUploader = u
}

// GetFileUploader returns the configured uploader or ErrUploaderMissing.
func GetFileUploader() (FileUploader, error) {
	uploaderMu.RLock()
	defer uploaderMu.RUnlock()
	if fileUploader == nil {
		return nil, ErrUploaderMissing
	}
	return fileUploader, nil
}
