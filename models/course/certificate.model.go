package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is issued once per (user, course) when progress reaches 100%.
// Student name and course title are snapshots taken at issuance, not a live
// join, so later renames do not rewrite history.
type Certificate struct {
	gorm.Model
	UserID          uint      `json:"user_id" gorm:"index:idx_cert_user_course;not null"`
	CourseID        uint      `json:"course_id" gorm:"index:idx_cert_user_course;not null"`
	CertificateCode string    `json:"certificate_code" gorm:"unique;not null"` // CERT-<16 hex>-<year>
	StudentName     string    `json:"student_name"`
	CourseTitle     string    `json:"course_title"`
	IssuedAt        time.Time `json:"issued_at"`
	IsDeleted       bool      `gorm:"default:false" json:"-"`
}
