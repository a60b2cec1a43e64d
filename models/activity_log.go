package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog records one admin write request.
type ActivityLog struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID      string    `json:"admin_id" gorm:"index:idx_activity_admin_date,sort:desc"` // session subject
	AdminEmail   string    `json:"admin_email" gorm:"not null"`
	Action       string    `json:"action" gorm:"not null;index"` // updated_order, created_alert ...
	ResourceType string    `json:"resource_type" gorm:"not null;index"`
	ResourceID   string    `json:"resource_id" gorm:"index"`
	Status       string    `json:"status" gorm:"not null"`
	StatusCode   int       `json:"status_code"`
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_activity_admin_date,sort:desc"`
}

func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

func (ActivityLog) TableName() string { return "activity_logs" }

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

const (
	ResourceTypeOrder = "order"
	ResourceTypeAlert = "alert"
	ResourceTypeSEO   = "seo"
	ResourceTypeBlog  = "blog"
)
