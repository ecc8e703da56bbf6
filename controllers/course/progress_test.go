package courseController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"regexp"
	"testing"

	"porto/config"
	"porto/database"
	"porto/models"
	courseModels "porto/models/course"
	courseValidator "porto/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// In-memory SQLite lives per connection, keep a single one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{
		Port:         "3000",
		DBName:       ":memory:",
		JWTKey:       "test-secret",
		SaltRound:    4,
		SessionHours: 24,
	}

	return db
}

type progressFixture struct {
	db      *gorm.DB
	user    *models.User
	course  *courseModels.Course
	lessons []courseModels.Lesson
	app     *fiber.App
}

func setupProgressFixture(t *testing.T, lessonCount int) *progressFixture {
	db := setupTestDB(t)

	user := models.User{Name: "Test Student", Email: "student@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)

	course := courseModels.Course{
		Title:       "Go From Scratch",
		Author:      "Author",
		Price:       50,
		Status:      "ACTIVE",
		IsPublished: true,
	}
	require.NoError(t, db.Create(&course).Error)

	lessons := make([]courseModels.Lesson, 0, lessonCount)
	for i := 0; i < lessonCount; i++ {
		lesson := courseModels.Lesson{
			CourseID:    course.ID,
			Title:       fmt.Sprintf("Lesson %d", i+1),
			Duration:    600,
			OrderIndex:  i + 1,
			IsPublished: true,
		}
		require.NoError(t, db.Create(&lesson).Error)
		lessons = append(lessons, lesson)
	}

	require.NoError(t, db.Create(&courseModels.Enrollment{
		UserID:   user.ID,
		CourseID: course.ID,
		Status:   "ENROLLED",
	}).Error)

	app := fiber.New()
	injectUser := func(c *fiber.Ctx) error {
		c.Locals("userId", user.ID)
		return c.Next()
	}
	app.Post("/course/:course_id/lesson/:lesson_id/progress", injectUser, courseValidator.LessonProgress(), UpdateLessonProgress)
	app.Get("/course/:course_id/progress", injectUser, courseValidator.CourseID("course_id"), GetCourseProgress)
	app.Get("/certificate/verify/:code", VerifyCertificate)

	return &progressFixture{db: db, user: &user, course: &course, lessons: lessons, app: app}
}

func (f *progressFixture) completeLesson(t *testing.T, lessonID uint) {
	t.Helper()

	body, _ := json.Marshal(map[string]interface{}{
		"watchDuration": 600,
		"completed":     true,
	})
	req := httptest.NewRequest("POST",
		fmt.Sprintf("/course/%d/lesson/%d/progress", f.course.ID, lessonID),
		bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProgressPercentageTracksCompletedLessons(t *testing.T) {
	f := setupProgressFixture(t, 4)

	f.completeLesson(t, f.lessons[0].ID)
	f.completeLesson(t, f.lessons[1].ID)

	var progress courseModels.CourseProgress
	require.NoError(t, f.db.Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).First(&progress).Error)
	assert.Equal(t, 50, progress.ProgressPercentage)
	assert.Equal(t, 2, progress.CompletedLessons)
	assert.Equal(t, 4, progress.TotalLessons)
	assert.False(t, progress.IsCompleted)

	var enrollment courseModels.Enrollment
	require.NoError(t, f.db.Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).First(&enrollment).Error)
	assert.Equal(t, "IN_PROGRESS", enrollment.Status)
	assert.Equal(t, float64(50), enrollment.Progress)
}

func TestCourseCompletionIssuesCertificateOnce(t *testing.T) {
	f := setupProgressFixture(t, 4)

	for _, lesson := range f.lessons {
		f.completeLesson(t, lesson.ID)
	}

	var progress courseModels.CourseProgress
	require.NoError(t, f.db.Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).First(&progress).Error)
	assert.Equal(t, 100, progress.ProgressPercentage)
	assert.True(t, progress.IsCompleted)
	assert.NotNil(t, progress.CompletedAt)

	var enrollment courseModels.Enrollment
	require.NoError(t, f.db.Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).First(&enrollment).Error)
	assert.Equal(t, "COMPLETED", enrollment.Status)

	var certificates []courseModels.Certificate
	require.NoError(t, f.db.Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).Find(&certificates).Error)
	require.Len(t, certificates, 1)

	cert := certificates[0]
	assert.Regexp(t, regexp.MustCompile(`^CERT-[0-9A-F]{16}-\d{4}$`), cert.CertificateCode)
	assert.Equal(t, "Test Student", cert.StudentName)
	assert.Equal(t, "Go From Scratch", cert.CourseTitle)

	// Replaying a completed lesson must not mint a second certificate
	f.completeLesson(t, f.lessons[0].ID)

	var count int64
	f.db.Model(&courseModels.Certificate{}).
		Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestWatchWithoutCompletionStaysIncomplete(t *testing.T) {
	f := setupProgressFixture(t, 2)

	body, _ := json.Marshal(map[string]interface{}{"watchDuration": 120, "lastPosition": 120})
	req := httptest.NewRequest("POST",
		fmt.Sprintf("/course/%d/lesson/%d/progress", f.course.ID, f.lessons[0].ID),
		bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lessonProgress courseModels.LessonProgress
	require.NoError(t, f.db.Where("user_id = ? AND lesson_id = ?", f.user.ID, f.lessons[0].ID).First(&lessonProgress).Error)
	assert.True(t, lessonProgress.Watched)
	assert.False(t, lessonProgress.Completed)
	assert.Equal(t, 120, lessonProgress.WatchDuration)

	// A shorter rewatch never shrinks the recorded duration
	body, _ = json.Marshal(map[string]interface{}{"watchDuration": 30, "lastPosition": 30})
	req = httptest.NewRequest("POST",
		fmt.Sprintf("/course/%d/lesson/%d/progress", f.course.ID, f.lessons[0].ID),
		bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = f.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, f.db.Where("user_id = ? AND lesson_id = ?", f.user.ID, f.lessons[0].ID).First(&lessonProgress).Error)
	assert.Equal(t, 120, lessonProgress.WatchDuration)
	assert.Equal(t, 30, lessonProgress.LastPosition)

	var progress courseModels.CourseProgress
	require.NoError(t, f.db.Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).First(&progress).Error)
	assert.Equal(t, 0, progress.ProgressPercentage)
}

func TestProgressRequiresEnrollment(t *testing.T) {
	f := setupProgressFixture(t, 1)

	// A second user without an enrollment is rejected
	other := models.User{Name: "Outsider", Email: "outsider@example.com", Password: "hashed"}
	require.NoError(t, f.db.Create(&other).Error)

	app := fiber.New()
	injectUser := func(c *fiber.Ctx) error {
		c.Locals("userId", other.ID)
		return c.Next()
	}
	app.Post("/course/:course_id/lesson/:lesson_id/progress", injectUser, courseValidator.LessonProgress(), UpdateLessonProgress)

	body, _ := json.Marshal(map[string]interface{}{"completed": true})
	req := httptest.NewRequest("POST",
		fmt.Sprintf("/course/%d/lesson/%d/progress", f.course.ID, f.lessons[0].ID),
		bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRecomputeHandlesCourseWithoutLessons(t *testing.T) {
	f := setupProgressFixture(t, 0)

	var enrollment courseModels.Enrollment
	require.NoError(t, f.db.Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).First(&enrollment).Error)

	progress, err := recomputeCourseProgress(f.db, f.user.ID, f.course.ID, &enrollment, f.user.Name, f.course.Title)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.ProgressPercentage)
	assert.False(t, progress.IsCompleted)

	// No certificate for an empty course
	var count int64
	f.db.Model(&courseModels.Certificate{}).Where("user_id = ?", f.user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestIssueCertificateIsIdempotent(t *testing.T) {
	f := setupProgressFixture(t, 0)

	first, err := IssueCertificate(f.db, f.user.ID, f.course.ID, f.user.Name, f.course.Title)
	require.NoError(t, err)

	second, err := IssueCertificate(f.db, f.user.ID, f.course.ID, f.user.Name, f.course.Title)
	assert.ErrorIs(t, err, ErrCertificateExists)
	assert.Equal(t, first.CertificateCode, second.CertificateCode)

	var count int64
	f.db.Model(&courseModels.Certificate{}).
		Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestVerifyCertificateByCode(t *testing.T) {
	f := setupProgressFixture(t, 0)

	cert, err := IssueCertificate(f.db, f.user.ID, f.course.ID, f.user.Name, f.course.Title)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/certificate/verify/"+cert.CertificateCode, nil)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Status bool `json:"status"`
		Data   struct {
			CertificateCode string `json:"certificateCode"`
			StudentName     string `json:"studentName"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Status)
	assert.Equal(t, cert.CertificateCode, result.Data.CertificateCode)
	assert.Equal(t, "Test Student", result.Data.StudentName)

	req = httptest.NewRequest("GET", "/certificate/verify/CERT-DOESNOTEXIST-2026", nil)
	resp, err = f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
