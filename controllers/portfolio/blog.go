package portfolioController

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"porto/database"
	"porto/middleware"
	"porto/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL-safe slug
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// uniqueSlug appends a numeric suffix until the slug is free
func uniqueSlug(db *gorm.DB, base string, excludeID uint) string {
	slug := base
	for i := 2; ; i++ {
		var existing models.BlogPost
		query := db.Where("slug = ?", slug)
		if excludeID != 0 {
			query = query.Where("id != ?", excludeID)
		}
		if err := query.First(&existing).Error; err != nil {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// GetBlogPosts lists published posts, newest first
func GetBlogPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	tag := c.Query("tag")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.BlogPost{}).
		Where("is_deleted = false AND is_published = ?", true)

	if tag != "" {
		db = db.Where("tags LIKE ?", "%"+tag+"%")
	}

	var total int64
	db.Count(&total)

	var posts []models.BlogPost
	if err := db.Offset(offset).Limit(limit).Order("published_at desc").Find(&posts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch posts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully!", fiber.Map{
		"posts": posts,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetBlogPostBySlug returns a published post and bumps its view counter
func GetBlogPostBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Slug is required!", nil)
	}

	db := database.Database.Db

	var post models.BlogPost
	if err := db.Where("slug = ? AND is_deleted = false AND is_published = ?", slug, true).
		First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	db.Model(&post).Update("views", gorm.Expr("views + 1"))
	post.Views++

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post fetched successfully!", post)
}

// CreateBlogPost creates a post with a generated unique slug (Admin only)
func CreateBlogPost(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBlogPost").(*struct {
		Title       string `json:"title"`
		Excerpt     string `json:"excerpt"`
		Content     string `json:"content"`
		CoverURL    string `json:"cover_url"`
		Tags        string `json:"tags"`
		IsPublished bool   `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	post := models.BlogPost{
		Title:       reqData.Title,
		Slug:        uniqueSlug(db, Slugify(reqData.Title), 0),
		Excerpt:     reqData.Excerpt,
		Content:     reqData.Content,
		CoverURL:    reqData.CoverURL,
		Tags:        reqData.Tags,
		IsPublished: reqData.IsPublished,
	}
	if post.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := db.Create(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created successfully!", post)
}

// UpdateBlogPost updates a post (Admin only); the slug follows the title
func UpdateBlogPost(c *fiber.Ctx) error {
	postID := c.Locals("entityID").(int)

	db := database.Database.Db

	var post models.BlogPost
	if err := db.Where("id = ? AND is_deleted = false", postID).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	reqData, ok := c.Locals("validatedBlogPost").(*struct {
		Title       string `json:"title"`
		Excerpt     string `json:"excerpt"`
		Content     string `json:"content"`
		CoverURL    string `json:"cover_url"`
		Tags        string `json:"tags"`
		IsPublished bool   `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != post.Title {
		post.Slug = uniqueSlug(db, Slugify(reqData.Title), post.ID)
	}
	post.Title = reqData.Title
	post.Excerpt = reqData.Excerpt
	post.Content = reqData.Content
	post.CoverURL = reqData.CoverURL
	post.Tags = reqData.Tags

	if reqData.IsPublished && !post.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}
	post.IsPublished = reqData.IsPublished

	if err := db.Save(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post updated successfully!", post)
}

// DeleteBlogPost soft-deletes a post (Admin only)
func DeleteBlogPost(c *fiber.Ctx) error {
	postID := c.Locals("entityID").(int)

	var post models.BlogPost
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", postID).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	post.IsDeleted = true
	if err := database.Database.Db.Save(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post deleted successfully!", nil)
}
