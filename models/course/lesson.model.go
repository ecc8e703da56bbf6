package course

import "gorm.io/gorm"

// Lesson represents a single video lesson within a course
type Lesson struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `gorm:"type:text" json:"description"`
	VideoURL    string `json:"video_url"`
	Duration    int    `json:"duration" gorm:"default:0"`    // duration in seconds
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // order within course
	IsFree      bool   `json:"is_free" gorm:"default:false"` // preview lesson
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`
}
