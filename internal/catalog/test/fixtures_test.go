package catalog_test

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"debugops/server/internal/catalog"
	"debugops/server/internal/testutils"
)

// newCatalogService wires the real repositories over the given connection
func newCatalogService(db *gorm.DB) *catalog.CatalogService {
	return catalog.NewCatalogService(
		catalog.NewErrorRepository(db),
		catalog.NewCategoryRepository(db),
		catalog.NewTagRepository(db),
		catalog.NewAnalyticsRepository(db),
		5*time.Second,
	)
}

// setupCatalogService returns a service running inside a rolled-back transaction
func setupCatalogService(t *testing.T) (*catalog.CatalogService, *gorm.DB) {
	t.Helper()
	db := testutils.SetupTestDB(t)
	return newCatalogService(db), db
}
