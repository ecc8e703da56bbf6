package models

import "gorm.io/gorm"

// Service is an offered service listed on the portfolio
type Service struct {
	gorm.Model
	Title       string  `json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	IconURL     string  `json:"icon_url"`
	StartingAt  float64 `gorm:"default:0" json:"starting_at"`
	OrderIndex  int     `gorm:"default:0" json:"order_index"`
	IsPublished bool    `gorm:"default:false" json:"is_published"`
	IsDeleted   bool    `gorm:"default:false" json:"-"`
}
