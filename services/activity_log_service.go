package services

import (
	"context"
	"fmt"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActivityQuery filters GET /admin/activity.
type ActivityQuery struct {
	AdminEmail   string
	ResourceType string
	Page         int
	Limit        int
}

// RecordActivity stores one admin action. Failures are logged and swallowed
// so auditing never breaks the request it describes.
func RecordActivity(ctx context.Context, db *gorm.DB, entry models.ActivityLog) {
	if db == nil {
		return
	}
	if err := db.WithContext(ctx).Create(&entry).Error; err != nil {
		config.Log.Error("[activity-log] failed to create activity log",
			zap.String("action", entry.Action),
			zap.String("admin", entry.AdminEmail),
			zap.Error(err))
		return
	}
	config.Log.Debug("[activity-log] recorded",
		zap.String("action", entry.Action),
		zap.String("resource", entry.ResourceType+"/"+entry.ResourceID),
		zap.String("admin", entry.AdminEmail))
}

// ListActivity returns one page of activity, newest first, and the total.
func ListActivity(ctx context.Context, db *gorm.DB, q ActivityQuery) ([]models.ActivityLog, int64, error) {
	base := db.WithContext(ctx).Model(&models.ActivityLog{})
	if q.AdminEmail != "" {
		base = base.Where("admin_email = ?", q.AdminEmail)
	}
	if q.ResourceType != "" {
		base = base.Where("resource_type = ?", q.ResourceType)
	}

	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count activity: %w", err)
	}

	logs := []models.ActivityLog{}
	err := base.Order("created_at DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list activity: %w", err)
	}
	return logs, total, nil
}
