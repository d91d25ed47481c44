package catalog_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gorm.io/gorm"

	model "debugops/server/internal/model/catalog"
	"debugops/server/internal/response"
	"debugops/server/internal/testutils"
)

func countAnalytics(t *testing.T, db *gorm.DB, errorID uint, action string) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&model.Analytics{}).
		Where("error_id = ? AND action = ?", errorID, action).
		Count(&n).Error; err != nil {
		t.Fatalf("counting analytics failed: %v", err)
	}
	return n
}

func reloadError(t *testing.T, db *gorm.DB, id uint) model.Error {
	t.Helper()
	var e model.Error
	if err := db.First(&e, id).Error; err != nil {
		t.Fatalf("reloading error failed: %v", err)
	}
	return e
}

func TestGetBySlugAndRecordView_IncrementsViewsAndAppendsAnalytics(t *testing.T) {
	service, db := setupCatalogService(t)
	category := testutils.CreateTestCategory(db)
	article := testutils.CreateTestError(db, category.ID, testutils.WithViews(5))

	got, err := service.GetBySlugAndRecordView(context.Background(), article.Slug)
	if err != nil {
		t.Fatalf("GetBySlugAndRecordView failed: %v", err)
	}

	if got.Category.ID != category.ID {
		t.Error("expected category preloaded on detail result")
	}

	reloaded := reloadError(t, db, article.ID)
	if reloaded.Views != 6 {
		t.Errorf("expected views 6, got %d", reloaded.Views)
	}
	if n := countAnalytics(t, db, article.ID, model.ActionView); n != 1 {
		t.Errorf("expected exactly 1 view analytics row, got %d", n)
	}
}

func TestGetBySlugAndRecordView_UnknownSlugWritesNothing(t *testing.T) {
	service, db := setupCatalogService(t)

	var before int64
	if err := db.Model(&model.Analytics{}).Count(&before).Error; err != nil {
		t.Fatalf("counting analytics failed: %v", err)
	}

	_, err := service.GetBySlugAndRecordView(context.Background(), "does-not-exist")

	be, ok := response.AsBusinessError(err)
	if !ok || be.Code != response.NotFound {
		t.Fatalf("expected not_found business error, got %v", err)
	}

	var after int64
	if err := db.Model(&model.Analytics{}).Count(&after).Error; err != nil {
		t.Fatalf("counting analytics failed: %v", err)
	}
	if before != after {
		t.Errorf("unknown slug must not append analytics: %d -> %d", before, after)
	}
}

// N 个并发阅读后计数恰好 +N，行为日志恰好 N 条：
// 没有丢失更新，也没有重复提交
func TestGetBySlugAndRecordView_ConcurrentViews(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping concurrency test in short mode")
	}

	// 并发写需要真实的独立连接，不能跑在单个包裹事务里
	db := testutils.SetupTestDBNoTx(t)
	service := newCatalogService(db)

	category := testutils.CreateTestCategory(db)
	article := testutils.CreateTestError(db, category.ID)
	t.Cleanup(func() {
		db.Where("error_id = ?", article.ID).Delete(&model.Analytics{})
		db.Exec("DELETE FROM error_tags WHERE error_id = ?", article.ID)
		db.Delete(&model.Error{}, article.ID)
		db.Delete(&model.Category{}, category.ID)
	})

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := service.GetBySlugAndRecordView(context.Background(), article.Slug); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent view failed: %v", err)
	}

	reloaded := reloadError(t, db, article.ID)
	if reloaded.Views != article.Views+n {
		t.Errorf("expected views %d, got %d (lost update?)", article.Views+n, reloaded.Views)
	}
	if got := countAnalytics(t, db, article.ID, model.ActionView); got != n {
		t.Errorf("expected %d view analytics rows, got %d", n, got)
	}
}

func TestLike_IncrementsLikesAndAppendsAnalytics(t *testing.T) {
	service, db := setupCatalogService(t)
	category := testutils.CreateTestCategory(db)
	article := testutils.CreateTestError(db, category.ID)

	likes, err := service.Like(context.Background(), article.Slug)
	if err != nil {
		t.Fatalf("Like failed: %v", err)
	}
	if likes != 1 {
		t.Errorf("expected likes 1, got %d", likes)
	}

	reloaded := reloadError(t, db, article.ID)
	if reloaded.Likes != 1 {
		t.Errorf("expected stored likes 1, got %d", reloaded.Likes)
	}
	if n := countAnalytics(t, db, article.ID, model.ActionLike); n != 1 {
		t.Errorf("expected exactly 1 like analytics row, got %d", n)
	}
}

func TestTrackAction_AppendsRow(t *testing.T) {
	service, db := setupCatalogService(t)
	category := testutils.CreateTestCategory(db)
	article := testutils.CreateTestError(db, category.ID)

	if err := service.TrackAction(context.Background(), article.ID, model.ActionView); err != nil {
		t.Fatalf("TrackAction failed: %v", err)
	}

	if n := countAnalytics(t, db, article.ID, model.ActionView); n != 1 {
		t.Errorf("expected 1 analytics row, got %d", n)
	}
}

func TestCategoryDetail_NotFound(t *testing.T) {
	service, _ := setupCatalogService(t)

	_, err := service.CategoryDetail(context.Background(), "no-such-category")

	var be *response.BusinessError
	if !errors.As(err, &be) || be.Code != response.NotFound {
		t.Fatalf("expected not_found business error, got %v", err)
	}
}

func TestCategoryDetail_ListsPublishedErrors(t *testing.T) {
	service, db := setupCatalogService(t)
	category := testutils.CreateTestCategory(db)
	other := testutils.CreateTestCategory(db)

	mine := testutils.CreateTestError(db, category.ID)
	testutils.CreateTestError(db, other.ID)
	testutils.CreateTestError(db, category.ID, testutils.WithStatus(model.StatusDraft))

	detail, err := service.CategoryDetail(context.Background(), category.Slug)
	if err != nil {
		t.Fatalf("CategoryDetail failed: %v", err)
	}

	if detail.Category.ID != category.ID {
		t.Errorf("expected category %d, got %d", category.ID, detail.Category.ID)
	}
	if detail.ErrorCount != 1 || len(detail.Errors) != 1 {
		t.Fatalf("expected exactly 1 published error, got %d", len(detail.Errors))
	}
	if detail.Errors[0].ID != mine.ID {
		t.Errorf("expected error %d, got %d", mine.ID, detail.Errors[0].ID)
	}
}
