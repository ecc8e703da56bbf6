package models

import "gorm.io/gorm"

// Skill is a portfolio skill entry
type Skill struct {
	gorm.Model
	Name        string `json:"name"`
	Category    string `json:"category"` // frontend, backend, tooling
	Level       int    `gorm:"default:0" json:"level"` // 0-100
	IconURL     string `json:"icon_url"`
	OrderIndex  int    `gorm:"default:0" json:"order_index"`
	IsPublished bool   `gorm:"default:false" json:"is_published"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`
}
