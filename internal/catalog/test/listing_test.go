package catalog_test

import (
	"context"
	"testing"
	"time"

	"debugops/server/internal/catalog"
	model "debugops/server/internal/model/catalog"
	"debugops/server/internal/testutils"
)

func TestList_OrderedByRecencyAndLimited(t *testing.T) {
	service, db := setupCatalogService(t)
	category := testutils.CreateTestCategory(db)

	base := time.Now().Add(-time.Hour)
	oldest := testutils.CreateTestError(db, category.ID, testutils.WithCreatedAt(base))
	middle := testutils.CreateTestError(db, category.ID, testutils.WithCreatedAt(base.Add(10*time.Minute)))
	newest := testutils.CreateTestError(db, category.ID, testutils.WithCreatedAt(base.Add(20*time.Minute)))

	result, err := service.List(context.Background(), catalog.ListQuery{
		CategorySlug: category.Slug,
		Limit:        2,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("expected 2 results, got %d", len(result))
	}
	if result[0].ID != newest.ID || result[1].ID != middle.ID {
		t.Errorf("expected [%d %d] (newest first), got [%d %d]",
			newest.ID, middle.ID, result[0].ID, result[1].ID)
	}
	for _, e := range result {
		if e.ID == oldest.ID {
			t.Error("oldest article should have been cut off by the limit")
		}
	}
}

func TestList_ExcludesDrafts(t *testing.T) {
	service, db := setupCatalogService(t)
	category := testutils.CreateTestCategory(db)

	published := testutils.CreateTestError(db, category.ID)
	draft := testutils.CreateTestError(db, category.ID, testutils.WithStatus(model.StatusDraft))

	result, err := service.List(context.Background(), catalog.ListQuery{
		CategorySlug: category.Slug,
		Limit:        catalog.DefaultListLimit,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	for _, e := range result {
		if e.ID == draft.ID {
			t.Error("draft article must not appear in public listings")
		}
	}
	if len(result) != 1 || result[0].ID != published.ID {
		t.Errorf("expected only the published article, got %d results", len(result))
	}
}

// category=all 和不带 category 参数必须返回同一结果集
func TestList_CategoryAllEqualsNoCategory(t *testing.T) {
	service, db := setupCatalogService(t)
	first := testutils.CreateTestCategory(db)
	second := testutils.CreateTestCategory(db)
	testutils.CreateTestError(db, first.ID)
	testutils.CreateTestError(db, second.ID)

	withAll, err := service.List(context.Background(),
		catalog.ParseListQuery("all", "", ""))
	if err != nil {
		t.Fatalf("List with category=all failed: %v", err)
	}

	withNone, err := service.List(context.Background(),
		catalog.ParseListQuery("", "", ""))
	if err != nil {
		t.Fatalf("List without category failed: %v", err)
	}

	if len(withAll) != len(withNone) {
		t.Fatalf("result sets differ in size: %d vs %d", len(withAll), len(withNone))
	}
	for i := range withAll {
		if withAll[i].ID != withNone[i].ID {
			t.Errorf("position %d differs: %d vs %d", i, withAll[i].ID, withNone[i].ID)
		}
	}
}

func TestList_SearchMatchesContentCaseInsensitively(t *testing.T) {
	service, db := setupCatalogService(t)
	category := testutils.CreateTestCategory(db)

	match := testutils.CreateTestError(db, category.ID,
		testutils.WithContent("# Fix\n\nRestart the Kubernetes control plane."))
	testutils.CreateTestError(db, category.ID,
		testutils.WithContent("# Fix\n\nUnrelated docker advice."))

	result, err := service.List(context.Background(), catalog.ListQuery{
		CategorySlug: category.Slug,
		Search:       "kubernetes",
		Limit:        catalog.DefaultListLimit,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(result) != 1 || result[0].ID != match.ID {
		t.Fatalf("expected only the kubernetes article, got %d results", len(result))
	}
	if result[0].Category.ID != category.ID {
		t.Error("expected category preloaded on listing results")
	}
}

// 相同参数、无写入时两次调用结果一致
func TestList_Idempotent(t *testing.T) {
	service, db := setupCatalogService(t)
	category := testutils.CreateTestCategory(db)
	for i := 0; i < 3; i++ {
		testutils.CreateTestError(db, category.ID)
	}

	q := catalog.ListQuery{CategorySlug: category.Slug, Limit: catalog.DefaultListLimit}

	first, err := service.List(context.Background(), q)
	if err != nil {
		t.Fatalf("first List failed: %v", err)
	}
	second, err := service.List(context.Background(), q)
	if err != nil {
		t.Fatalf("second List failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("position %d differs between identical calls", i)
		}
	}
}

// 搜索结果按阅读量倒序（热门优先），与列表的按时间倒序不同
func TestSearch_OrderedByViewsDesc(t *testing.T) {
	service, db := setupCatalogService(t)
	category := testutils.CreateTestCategory(db)

	low := testutils.CreateTestError(db, category.ID,
		testutils.WithExcerpt("terraform plan drift"), testutils.WithViews(1))
	high := testutils.CreateTestError(db, category.ID,
		testutils.WithExcerpt("terraform apply hangs"), testutils.WithViews(50))
	mid := testutils.CreateTestError(db, category.ID,
		testutils.WithExcerpt("terraform state locked"), testutils.WithViews(10))

	result, err := service.Search(context.Background(), "terraform")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(result) != 3 {
		t.Fatalf("expected 3 results, got %d", len(result))
	}
	want := []uint{high.ID, mid.ID, low.ID}
	for i, id := range want {
		if result[i].ID != id {
			t.Errorf("position %d: expected %d, got %d", i, id, result[i].ID)
		}
	}
}
