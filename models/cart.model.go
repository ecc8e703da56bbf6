package models

import (
	"gorm.io/gorm"
)

// CartItem holds a course a user intends to buy. Cleared on settlement.
type CartItem struct {
	gorm.Model
	UserID    uint `gorm:"index:idx_cart_user_course;not null" json:"userId"`
	CourseID  uint `gorm:"index:idx_cart_user_course;not null" json:"courseId"`
	IsDeleted bool `gorm:"default:false" json:"-"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
