package models

import (
	"gorm.io/gorm"
)

// Wallet keeps the stored-value balance for a user. A row is created lazily on
// first access. Balance never goes below zero on a committed operation.
type Wallet struct {
	gorm.Model
	UserID         uint    `gorm:"uniqueIndex;not null" json:"userId"`
	Balance        float64 `gorm:"not null;default:0" json:"balance"`
	TotalDeposited float64 `gorm:"not null;default:0" json:"totalDeposited"`
	TotalSpent     float64 `gorm:"not null;default:0" json:"totalSpent"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Wallet) TableName() string {
	return "wallets"
}
