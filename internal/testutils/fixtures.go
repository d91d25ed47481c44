package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"debugops/server/internal/model/catalog"
)

// CreateTestCategory creates a test category with a unique slug
func CreateTestCategory(db *gorm.DB, opts ...CategoryOption) *catalog.Category {
	uniqueID := uuid.New().String()

	testCategory := &catalog.Category{
		Name:        fmt.Sprintf("Test Category %s", uniqueID),
		Slug:        fmt.Sprintf("test-category-%s", uniqueID),
		Description: "Test category description",
		Icon:        "Wrench",
		Color:       "bg-blue-500",
		CreatedAt:   time.Now(),
	}

	for _, opt := range opts {
		opt(testCategory)
	}

	if err := db.Create(testCategory).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test category: %v", err))
	}

	return testCategory
}

// CategoryOption configures test category
type CategoryOption func(*catalog.Category)

// WithCategorySlug sets the category slug
func WithCategorySlug(slug string) CategoryOption {
	return func(c *catalog.Category) {
		c.Slug = slug
	}
}

// CreateTestError creates a published test error article
func CreateTestError(db *gorm.DB, categoryID uint, opts ...ErrorOption) *catalog.Error {
	uniqueID := uuid.New().String()

	testError := &catalog.Error{
		Title:      fmt.Sprintf("Test Error %s", uniqueID),
		Slug:       fmt.Sprintf("test-error-%s", uniqueID),
		Excerpt:    "Test excerpt",
		Content:    "# Test\n\nTest content",
		CategoryID: categoryID,
		Status:     catalog.StatusPublished,
		CreatedAt:  time.Now(),
	}

	for _, opt := range opts {
		opt(testError)
	}

	if err := db.Create(testError).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test error: %v", err))
	}

	return testError
}

// ErrorOption configures test error
type ErrorOption func(*catalog.Error)

// WithTitle sets the title
func WithTitle(title string) ErrorOption {
	return func(e *catalog.Error) {
		e.Title = title
	}
}

// WithSlug sets the slug
func WithSlug(slug string) ErrorOption {
	return func(e *catalog.Error) {
		e.Slug = slug
	}
}

// WithExcerpt sets the excerpt
func WithExcerpt(excerpt string) ErrorOption {
	return func(e *catalog.Error) {
		e.Excerpt = excerpt
	}
}

// WithContent sets the content
func WithContent(content string) ErrorOption {
	return func(e *catalog.Error) {
		e.Content = content
	}
}

// WithStatus sets the status
func WithStatus(status string) ErrorOption {
	return func(e *catalog.Error) {
		e.Status = status
	}
}

// WithViews sets the view counter
func WithViews(views uint) ErrorOption {
	return func(e *catalog.Error) {
		e.Views = views
	}
}

// WithCreatedAt sets the creation time
func WithCreatedAt(ts time.Time) ErrorOption {
	return func(e *catalog.Error) {
		e.CreatedAt = ts
	}
}
