package course

import (
	"time"

	"gorm.io/gorm"
)

// LessonProgress tracks per-lesson watch state for a user. Completed implies
// watched, and completion never reverts once set.
type LessonProgress struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"index:idx_progress_user_lesson;not null"`
	LessonID      uint       `json:"lesson_id" gorm:"index:idx_progress_user_lesson;not null"`
	CourseID      uint       `json:"course_id" gorm:"index;not null"`
	Watched       bool       `json:"watched" gorm:"default:false"`
	WatchDuration int        `json:"watch_duration" gorm:"default:0"` // seconds watched
	LastPosition  int        `json:"last_position" gorm:"default:0"`  // resume point in seconds
	Completed     bool       `json:"completed" gorm:"default:false"`
	CompletedAt   *time.Time `json:"completed_at"`
	IsDeleted     bool       `gorm:"default:false" json:"-"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}

// CourseProgress is the aggregate completion state for a (user, course) pair,
// recomputed from LessonProgress on every update.
type CourseProgress struct {
	gorm.Model
	UserID             uint       `json:"user_id" gorm:"index:idx_course_progress_user_course;not null"`
	CourseID           uint       `json:"course_id" gorm:"index:idx_course_progress_user_course;not null"`
	ProgressPercentage int        `json:"progress_percentage" gorm:"default:0"` // floor(100*completed/total), 0-100
	CompletedLessons   int        `json:"completed_lessons" gorm:"default:0"`
	TotalLessons       int        `json:"total_lessons" gorm:"default:0"`
	IsCompleted        bool       `json:"is_completed" gorm:"default:false"`
	CompletedAt        *time.Time `json:"completed_at"`
	IsDeleted          bool       `gorm:"default:false" json:"-"`
}

func (CourseProgress) TableName() string {
	return "course_progress"
}
