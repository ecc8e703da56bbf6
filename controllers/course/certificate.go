package courseController

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"porto/database"
	"porto/middleware"
	courseModels "porto/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrCertificateExists is returned when a certificate was already issued for
// the (user, course) pair
var ErrCertificateExists = errors.New("certificate already issued")

// generateCertificateCode returns a code of the form CERT-<16 hex upper>-<year>
func generateCertificateCode() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("CERT-%s-%d", strings.ToUpper(hex.EncodeToString(b)), time.Now().Year()), nil
}

// IssueCertificate creates the completion certificate for a (user, course)
// pair. Idempotent: an existing certificate makes it fail with
// ErrCertificateExists and never inserts a second row. Student name and
// course title are stored as snapshots. Runs inside the caller's transaction.
func IssueCertificate(tx *gorm.DB, userID, courseID uint, studentName, courseTitle string) (*courseModels.Certificate, error) {
	var existing courseModels.Certificate
	err := tx.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		First(&existing).Error
	if err == nil {
		return &existing, ErrCertificateExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	code, err := generateCertificateCode()
	if err != nil {
		return nil, err
	}

	certificate := courseModels.Certificate{
		UserID:          userID,
		CourseID:        courseID,
		CertificateCode: code,
		StudentName:     studentName,
		CourseTitle:     courseTitle,
		IssuedAt:        time.Now(),
	}

	if err := tx.Create(&certificate).Error; err != nil {
		return nil, err
	}

	return &certificate, nil
}

// GetUserCertificates gets all certificates for the current user
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = false", userID).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
		"total":        len(certificates),
	})
}

// VerifyCertificate looks up a certificate by its public code
func VerifyCertificate(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))
	if code == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate code is required!", nil)
	}

	var certificate courseModels.Certificate
	if err := database.Database.Db.Where("certificate_code = ? AND is_deleted = false", code).
		First(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate verified!", fiber.Map{
		"certificateCode": certificate.CertificateCode,
		"studentName":     certificate.StudentName,
		"courseTitle":     certificate.CourseTitle,
		"issuedAt":        certificate.IssuedAt,
	})
}
