package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageSEO holds the head metadata for one storefront path.
type PageSEO struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PagePath     string    `json:"page_path" gorm:"uniqueIndex;not null"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Keywords     string    `json:"keywords"`
	OGTitle      string    `json:"og_title"`
	OGImage      string    `json:"og_image"`
	CanonicalURL string    `json:"canonical_url"`
	Robots       string    `json:"robots"`
	UpdatedBy    string    `json:"updated_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *PageSEO) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (PageSEO) TableName() string { return "page_seo" }

type UpsertPageSEORequest struct {
	PagePath     string `json:"page_path" binding:"required,startswith=/"`
	Title        string `json:"title" binding:"required,max=70"`
	Description  string `json:"description" binding:"max=320"`
	Keywords     string `json:"keywords"`
	OGTitle      string `json:"og_title"`
	OGImage      string `json:"og_image" binding:"omitempty,url"`
	CanonicalURL string `json:"canonical_url" binding:"omitempty,url"`
	Robots       string `json:"robots"`
}
