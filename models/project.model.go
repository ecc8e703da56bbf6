package models

import "gorm.io/gorm"

// Project is a portfolio work entry
type Project struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	LiveURL      string `json:"live_url"`
	RepoURL      string `json:"repo_url"`
	TechStack    string `json:"tech_stack"` // comma separated
	OrderIndex   int    `gorm:"default:0" json:"order_index"`
	IsPublished  bool   `gorm:"default:false" json:"is_published"`
	IsDeleted    bool   `gorm:"default:false" json:"-"`
}
