package portfolioController

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"porto/config"
	"porto/database"
	"porto/models"

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
		Port:   "3000",
		DBName: ":memory:",
		JWTKey: "test-secret",
	}

	return db
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":              "hello-world",
		"  Trimmed  Title  ":       "trimmed-title",
		"Go 1.23: What's New?":     "go-1-23-what-s-new",
		"UPPER lower 42":           "upper-lower-42",
		"---already-slugged---":    "already-slugged",
		"Symbols!@#$%^&*()Between": "symbols-between",
	}

	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input: %q", input)
	}
}

func TestUniqueSlugAppendsNumericSuffix(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.BlogPost{Title: "My Post", Slug: "my-post"}).Error)

	assert.Equal(t, "my-post-2", uniqueSlug(db, "my-post", 0))

	require.NoError(t, db.Create(&models.BlogPost{Title: "My Post", Slug: "my-post-2"}).Error)
	assert.Equal(t, "my-post-3", uniqueSlug(db, "my-post", 0))

	// The post keeps its own slug on update
	var first models.BlogPost
	require.NoError(t, db.Where("slug = ?", "my-post").First(&first).Error)
	assert.Equal(t, "my-post", uniqueSlug(db, "my-post", first.ID))
}

func TestGetBlogPostBySlugBumpsViews(t *testing.T) {
	db := setupTestDB(t)

	now := time.Now()
	post := models.BlogPost{
		Title:       "Readable Post",
		Slug:        "readable-post",
		Content:     "Body",
		IsPublished: true,
		PublishedAt: &now,
	}
	require.NoError(t, db.Create(&post).Error)

	app := fiber.New()
	app.Get("/blog/:slug", GetBlogPostBySlug)

	req := httptest.NewRequest("GET", "/blog/readable-post", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Status bool `json:"status"`
		Data   struct {
			Slug  string `json:"slug"`
			Views uint   `json:"views"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "readable-post", result.Data.Slug)
	assert.Equal(t, uint(1), result.Data.Views)

	var stored models.BlogPost
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, uint(1), stored.Views)

	// Unpublished posts are not served
	draft := models.BlogPost{Title: "Draft", Slug: "draft-post"}
	require.NoError(t, db.Create(&draft).Error)

	req = httptest.NewRequest("GET", "/blog/draft-post", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
