package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentStatus defines the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// Order converts a cart into a purchasable unit. Status only moves
// PENDING -> COMPLETED, via wallet settlement.
type Order struct {
	gorm.Model
	OrderNumber    string        `gorm:"unique;not null" json:"orderNumber"` // ORD-YYYYMMDD-XXXXXXXX
	UserID         uint          `gorm:"index;not null" json:"userId"`
	TotalAmount    float64       `gorm:"not null" json:"totalAmount"`
	DiscountAmount float64       `gorm:"default:0" json:"discountAmount"`
	FinalAmount    float64       `gorm:"not null" json:"finalAmount"`
	PaymentMethod  string        `gorm:"type:varchar(50);default:'wallet'" json:"paymentMethod"`
	PaymentStatus  PaymentStatus `gorm:"type:varchar(20);default:'PENDING'" json:"paymentStatus"`
	PaidAt         *time.Time    `json:"paidAt"`
	IsDeleted      bool          `gorm:"default:false" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	User  User        `gorm:"foreignKey:UserID" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots the course title and price at order time.
type OrderItem struct {
	gorm.Model
	OrderID     uint    `gorm:"index;not null" json:"orderId"`
	CourseID    uint    `gorm:"index;not null" json:"courseId"`
	CourseTitle string  `gorm:"type:varchar(255)" json:"courseTitle"`
	Price       float64 `gorm:"not null" json:"price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
