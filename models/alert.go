package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SitewideAlert is a banner shown across the storefront.
type SitewideAlert struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title           string     `json:"title" gorm:"not null"`
	Message         string     `json:"message" gorm:"not null"`
	BackgroundColor string     `json:"background_color"`
	TextColor       string     `json:"text_color"`
	LinkURL         *string    `json:"link_url,omitempty"`
	LinkText        *string    `json:"link_text,omitempty"`
	IsActive        bool       `json:"is_active" gorm:"index"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	CreatedBy       string     `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (a *SitewideAlert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (SitewideAlert) TableName() string { return "sitewide_alerts" }

type CreateAlertRequest struct {
	Title           string     `json:"title" binding:"required,max=120"`
	Message         string     `json:"message" binding:"required,max=500"`
	BackgroundColor string     `json:"background_color" binding:"omitempty,hexcolor"`
	TextColor       string     `json:"text_color" binding:"omitempty,hexcolor"`
	LinkURL         *string    `json:"link_url,omitempty" binding:"omitempty,url"`
	LinkText        *string    `json:"link_text,omitempty"`
	IsActive        bool       `json:"is_active"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
}

type UpdateAlertRequest struct {
	Title           *string    `json:"title,omitempty" binding:"omitempty,max=120"`
	Message         *string    `json:"message,omitempty" binding:"omitempty,max=500"`
	BackgroundColor *string    `json:"background_color,omitempty" binding:"omitempty,hexcolor"`
	TextColor       *string    `json:"text_color,omitempty" binding:"omitempty,hexcolor"`
	LinkURL         *string    `json:"link_url,omitempty"`
	LinkText        *string    `json:"link_text,omitempty"`
	IsActive        *bool      `json:"is_active,omitempty"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
}
