package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a user's access to a course with progress. At most one
// row exists per (user, course) pair.
type Enrollment struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"index:idx_enroll_user_course;not null"`
	CourseID         uint       `json:"course_id" gorm:"index:idx_enroll_user_course;not null"`
	Status           string     `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, IN_PROGRESS, COMPLETED
	Progress         float64    `json:"progress" gorm:"default:0"`        // Completion percentage (0-100)
	CompletedLessons int        `json:"completed_lessons" gorm:"default:0"`
	TotalLessons     int        `json:"total_lessons" gorm:"default:0"`
	CompletedAt      *time.Time `json:"completed_at"`
	IsDeleted        bool       `gorm:"default:false" json:"-"`
}
