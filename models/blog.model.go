package models

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost is a blog article addressable by slug
type BlogPost struct {
	gorm.Model
	Title       string     `json:"title"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	CoverURL    string     `json:"cover_url"`
	Tags        string     `json:"tags"` // comma separated
	Views       uint       `gorm:"default:0" json:"views"`
	IsPublished bool       `gorm:"default:false" json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
	IsDeleted   bool       `gorm:"default:false" json:"-"`
}
