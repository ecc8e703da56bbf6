package courseController

import (
	"log"
	"time"

	"porto/database"
	"porto/middleware"
	"porto/models"
	courseModels "porto/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpdateLessonProgress upserts the per-lesson watch state and recomputes the
// aggregate course progress. The lesson row, the aggregates, the enrollment
// mirror and (at 100%) the certificate all commit in a single transaction.
func UpdateLessonProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	reqData, ok := c.Locals("validatedLessonProgress").(*struct {
		WatchDuration *int  `json:"watchDuration"`
		LastPosition  *int  `json:"lastPosition"`
		Completed     *bool `json:"completed"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = false AND is_published = ?", courseID, true).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = false AND is_published = ?", lessonID, courseID, true).
		First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	tx := db.Begin()

	// Read-modify-write upsert of the lesson row
	var progress courseModels.LessonProgress
	err := tx.Where("user_id = ? AND lesson_id = ? AND is_deleted = false", userID, lessonID).
		First(&progress).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			tx.Rollback()
			log.Printf("Lesson progress lookup failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
		progress = courseModels.LessonProgress{
			UserID:   userID,
			LessonID: uint(lessonID),
			CourseID: uint(courseID),
		}
	}

	progress.Watched = true
	if reqData.WatchDuration != nil && *reqData.WatchDuration > progress.WatchDuration {
		progress.WatchDuration = *reqData.WatchDuration
	}
	if reqData.LastPosition != nil {
		progress.LastPosition = *reqData.LastPosition
	}
	// Completion is sticky: once complete, a later partial watch never reverts it
	if reqData.Completed != nil && *reqData.Completed && !progress.Completed {
		progress.Completed = true
		now := time.Now()
		progress.CompletedAt = &now
	}

	if err := tx.Save(&progress).Error; err != nil {
		tx.Rollback()
		log.Printf("Lesson progress save failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	courseProgress, err := recomputeCourseProgress(tx, userID, uint(courseID), &enrollment, user.Name, course.Title)
	if err != nil {
		tx.Rollback()
		log.Printf("Course progress recompute failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", fiber.Map{
		"lessonProgress": progress,
		"courseProgress": courseProgress,
	})
}

// recomputeCourseProgress recounts completed lessons, upserts the aggregate
// row, mirrors the result onto the enrollment and issues the certificate when
// the course reaches 100%. Runs inside the caller's transaction.
func recomputeCourseProgress(tx *gorm.DB, userID, courseID uint, enrollment *courseModels.Enrollment, studentName, courseTitle string) (*courseModels.CourseProgress, error) {
	var totalLessons int64
	if err := tx.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = false AND is_published = ?", courseID, true).
		Count(&totalLessons).Error; err != nil {
		return nil, err
	}

	var completedLessons int64
	if err := tx.Model(&courseModels.LessonProgress{}).
		Where("user_id = ? AND course_id = ? AND completed = ? AND is_deleted = false", userID, courseID, true).
		Count(&completedLessons).Error; err != nil {
		return nil, err
	}

	// A course with no lessons yet counts as 0%, not a division error
	percentage := 0
	if totalLessons > 0 {
		percentage = int(completedLessons * 100 / totalLessons)
	}
	if percentage > 100 {
		percentage = 100
	}
	isCompleted := percentage >= 100

	var courseProgress courseModels.CourseProgress
	err := tx.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		First(&courseProgress).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		courseProgress = courseModels.CourseProgress{
			UserID:   userID,
			CourseID: courseID,
		}
	}

	wasCompleted := courseProgress.IsCompleted

	courseProgress.ProgressPercentage = percentage
	courseProgress.CompletedLessons = int(completedLessons)
	courseProgress.TotalLessons = int(totalLessons)
	courseProgress.IsCompleted = isCompleted
	if isCompleted && courseProgress.CompletedAt == nil {
		now := time.Now()
		courseProgress.CompletedAt = &now
	}

	if err := tx.Save(&courseProgress).Error; err != nil {
		return nil, err
	}

	// Mirror onto the enrollment
	enrollment.Progress = float64(percentage)
	enrollment.CompletedLessons = int(completedLessons)
	enrollment.TotalLessons = int(totalLessons)
	if isCompleted {
		enrollment.Status = "COMPLETED"
		if enrollment.CompletedAt == nil {
			now := time.Now()
			enrollment.CompletedAt = &now
		}
	} else if percentage > 0 {
		enrollment.Status = "IN_PROGRESS"
	}

	if err := tx.Save(enrollment).Error; err != nil {
		return nil, err
	}

	if isCompleted && !wasCompleted {
		if _, err := IssueCertificate(tx, userID, courseID, studentName, courseTitle); err != nil && err != ErrCertificateExists {
			return nil, err
		}
	}

	return &courseProgress, nil
}

// GetCourseProgress returns aggregate and per-lesson progress for a course
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var courseProgress courseModels.CourseProgress
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		First(&courseProgress).Error; err != nil {
		// Nothing watched yet
		courseProgress = courseModels.CourseProgress{
			UserID:   userID,
			CourseID: uint(courseID),
		}
		var totalLessons int64
		db.Model(&courseModels.Lesson{}).
			Where("course_id = ? AND is_deleted = false AND is_published = ?", courseID, true).
			Count(&totalLessons)
		courseProgress.TotalLessons = int(totalLessons)
	}

	var lessonProgress []courseModels.LessonProgress
	db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		Find(&lessonProgress)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress": courseProgress,
		"lessons":  lessonProgress,
	})
}
