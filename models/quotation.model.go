package models

import "gorm.io/gorm"

// Quotation is a quote request submitted from the public site
type Quotation struct {
	gorm.Model
	Name      string  `gorm:"not null" json:"name"`
	Email     string  `gorm:"not null" json:"email"`
	Phone     string  `json:"phone"`
	ServiceID uint    `gorm:"index;default:0" json:"service_id"`
	Subject   string  `json:"subject"`
	Message   string  `gorm:"type:text" json:"message"`
	Budget    float64 `gorm:"default:0" json:"budget"`
	Status    string  `gorm:"default:'NEW'" json:"status"` // NEW, REVIEWED, CLOSED
	IsDeleted bool    `gorm:"default:false" json:"-"`
}
