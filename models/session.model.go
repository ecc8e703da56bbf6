package models

import (
	"time"

	"gorm.io/gorm"
)

// Session is a server-side record for a bearer token. The token carries the
// session ID; the row is the source of truth for expiry and revocation.
type Session struct {
	gorm.Model
	SessionID string     `gorm:"uniqueIndex;not null" json:"sessionId"`
	UserID    uint       `gorm:"index;not null" json:"userId"`
	ExpiresAt time.Time  `gorm:"not null" json:"expiresAt"`
	RevokedAt *time.Time `json:"revokedAt"`
	UserAgent string     `gorm:"default:''" json:"-"`
	IP        string     `gorm:"default:''" json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}
