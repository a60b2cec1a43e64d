package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BlogPost struct {
	ID            uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Slug          string                      `json:"slug" gorm:"uniqueIndex;not null"`
	Title         string                      `json:"title" gorm:"not null"`
	Excerpt       string                      `json:"excerpt"`
	Content       string                      `json:"content"`
	FeaturedImage *string                     `json:"featured_image,omitempty"`
	Author        string                      `json:"author"`
	Tags          datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb"`
	Published     bool                        `json:"published" gorm:"index"`
	PublishedAt   *time.Time                  `json:"published_at,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (BlogPost) TableName() string { return "blog_posts" }

type CreateBlogPostRequest struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Slug          string   `json:"slug,omitempty"` // derived from title when empty
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content" binding:"required"`
	FeaturedImage *string  `json:"featured_image,omitempty" binding:"omitempty,url"`
	Author        string   `json:"author"`
	Tags          []string `json:"tags"`
	Published     bool     `json:"published"`
}

type UpdateBlogPostRequest struct {
	Title         *string   `json:"title,omitempty" binding:"omitempty,max=200"`
	Slug          *string   `json:"slug,omitempty"`
	Excerpt       *string   `json:"excerpt,omitempty"`
	Content       *string   `json:"content,omitempty"`
	FeaturedImage *string   `json:"featured_image,omitempty"`
	Author        *string   `json:"author,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	Published     *bool     `json:"published,omitempty"`
}
