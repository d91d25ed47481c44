package catalog

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"debugops/server/internal/model/catalog"
)

// ErrorRepository 文章仓储层
type ErrorRepository struct {
	db *gorm.DB
}

func NewErrorRepository(db *gorm.DB) *ErrorRepository {
	return &ErrorRepository{db: db}
}

// published 公开可见文章的基础条件
func (r *ErrorRepository) published(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&catalog.Error{}).
		Where("errors.status = ?", catalog.StatusPublished)
}

// matching 搜索词条件：title/excerpt/content 不区分大小写的子串匹配
func matching(tx *gorm.DB, keyword string) *gorm.DB {
	pattern := "%" + keyword + "%"
	return tx.Where(
		"(errors.title ILIKE ? OR errors.excerpt ILIKE ? OR errors.content ILIKE ?)",
		pattern, pattern, pattern,
	)
}

// List 按条件查询公开文章列表，按创建时间倒序
func (r *ErrorRepository) List(ctx context.Context, q ListQuery) ([]catalog.Error, error) {
	tx := r.published(ctx)

	if q.CategorySlug != "" {
		tx = tx.Joins("JOIN categories ON categories.id = errors.category_id").
			Where("categories.slug = ?", q.CategorySlug)
	}

	if q.HasSearch() {
		tx = matching(tx, q.Search)
	}

	var errs []catalog.Error
	err := tx.Preload("Category").Preload("Tags").
		Order("errors.created_at DESC").
		Limit(q.Limit).
		Find(&errs).Error
	return errs, err
}

// Search 全文搜索，按阅读量倒序（热门结果优先）
func (r *ErrorRepository) Search(ctx context.Context, keyword string) ([]catalog.Error, error) {
	var errs []catalog.Error
	err := matching(r.published(ctx), keyword).
		Preload("Category").Preload("Tags").
		Order("errors.views DESC").
		Limit(SearchLimit).
		Find(&errs).Error
	return errs, err
}

// ListByCategory 某个分类下的全部公开文章，按创建时间倒序
func (r *ErrorRepository) ListByCategory(ctx context.Context, categoryID uint) ([]catalog.Error, error) {
	var errs []catalog.Error
	err := r.published(ctx).
		Where("errors.category_id = ?", categoryID).
		Preload("Category").Preload("Tags").
		Order("errors.created_at DESC").
		Find(&errs).Error
	return errs, err
}

// GetBySlug 按 slug 查询单篇文章（带分类和标签）
// 不存在时返回 gorm.ErrRecordNotFound
func (r *ErrorRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Error, error) {
	var e catalog.Error
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Tags").
		Where("slug = ?", slug).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create 创建文章
// e.Tags 中的标签必须已持久化（带主键），这里只写文章行和关联表
func (r *ErrorRepository) Create(ctx context.Context, e *catalog.Error) error {
	return r.db.WithContext(ctx).Omit("Tags.*").Create(e).Error
}

// RecordView 阅读计数事务：views+1 和一条 view 行为日志，同一事务提交
func (r *ErrorRepository) RecordView(ctx context.Context, errorID uint) error {
	return r.recordCounter(ctx, errorID, "views", catalog.ActionView)
}

// RecordLike 点赞计数事务，与 RecordView 同构
func (r *ErrorRepository) RecordLike(ctx context.Context, errorID uint) error {
	return r.recordCounter(ctx, errorID, "likes", catalog.ActionLike)
}

// recordCounter 计数器自增 + 行为日志，要么都提交要么都回滚
func (r *ErrorRepository) recordCounter(ctx context.Context, errorID uint, column, action string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&catalog.Error{}).
			Where("id = ?", errorID).
			UpdateColumn(column, gorm.Expr(column+" + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(&catalog.Analytics{
			ErrorID:   errorID,
			Action:    action,
			Timestamp: time.Now(),
		}).Error
	})
}

// CategoryRepository 分类仓储层
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var c catalog.Category
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	var c catalog.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]catalog.Category, error) {
	var cs []catalog.Category
	err := r.db.WithContext(ctx).Order("id").Find(&cs).Error
	return cs, err
}

// PublishedCounts 各分类下公开文章数
func (r *CategoryRepository) PublishedCounts(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		CategoryID uint
		Total      int64
	}
	err := r.db.WithContext(ctx).
		Model(&catalog.Error{}).
		Select("category_id, COUNT(*) AS total").
		Where("status = ?", catalog.StatusPublished).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Total
	}
	return counts, nil
}

// TagRepository 标签仓储层
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// FindOrCreate 查找或创建标签（按唯一的 name）
// 并发创建同名标签时依赖唯一约束：插入触发冲突则按"已存在"处理，
// 重新查询后返回，不把冲突当作失败向上抛
func (r *TagRepository) FindOrCreate(ctx context.Context, name string) (*catalog.Tag, error) {
	var tag catalog.Tag

	err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = catalog.Tag{
		Name:      name,
		Slug:      SlugifyTag(name),
		CreatedAt: time.Now(),
	}
	err = r.db.WithContext(ctx).Create(&tag).Error
	if err == nil {
		return &tag, nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		var existing catalog.Tag
		if err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}

	return nil, err
}

// AnalyticsRepository 行为日志仓储层
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Create 追加一条行为日志
func (r *AnalyticsRepository) Create(ctx context.Context, errorID uint, action string) error {
	return r.db.WithContext(ctx).Create(&catalog.Analytics{
		ErrorID:   errorID,
		Action:    action,
		Timestamp: time.Now(),
	}).Error
}
