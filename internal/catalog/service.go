package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"debugops/server/internal/dto"
	"debugops/server/internal/model/catalog"
	"debugops/server/internal/response"
)

// 存储接口按使用方收窄，具体实现是本包的各仓储
// 测试可以用桩实现验证调用行为（比如空搜索词不触发存储调用）

type ErrorStore interface {
	List(ctx context.Context, q ListQuery) ([]catalog.Error, error)
	Search(ctx context.Context, keyword string) ([]catalog.Error, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]catalog.Error, error)
	GetBySlug(ctx context.Context, slug string) (*catalog.Error, error)
	Create(ctx context.Context, e *catalog.Error) error
	RecordView(ctx context.Context, errorID uint) error
	RecordLike(ctx context.Context, errorID uint) error
}

type CategoryStore interface {
	GetByID(ctx context.Context, id uint) (*catalog.Category, error)
	GetBySlug(ctx context.Context, slug string) (*catalog.Category, error)
	List(ctx context.Context) ([]catalog.Category, error)
	PublishedCounts(ctx context.Context) (map[uint]int64, error)
}

type TagStore interface {
	FindOrCreate(ctx context.Context, name string) (*catalog.Tag, error)
}

type AnalyticsStore interface {
	Create(ctx context.Context, errorID uint, action string) error
}

// CatalogService 内容核心服务：列表、搜索、详情、创建、行为上报
type CatalogService struct {
	errorStore     ErrorStore
	categoryStore  CategoryStore
	tagStore       TagStore
	analyticsStore AnalyticsStore
	// 单次存储调用的超时上限，存储无响应时请求以失败结束而不是悬挂
	storeTimeout time.Duration
}

func NewCatalogService(
	errorStore ErrorStore,
	categoryStore CategoryStore,
	tagStore TagStore,
	analyticsStore AnalyticsStore,
	storeTimeout time.Duration,
) *CatalogService {
	if storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}
	return &CatalogService{
		errorStore:     errorStore,
		categoryStore:  categoryStore,
		tagStore:       tagStore,
		analyticsStore: analyticsStore,
		storeTimeout:   storeTimeout,
	}
}

func (s *CatalogService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

// storeError 记录存储失败日志并包装为对外的通用错误
func storeError(op, msg string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("store call failed")
	return response.NewStoreError(msg, err)
}

// List 公开文章列表
func (s *CatalogService) List(ctx context.Context, q ListQuery) ([]catalog.Error, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	errs, err := s.errorStore.List(ctx, q)
	if err != nil {
		return nil, storeError("list_errors", "Failed to fetch errors", err)
	}
	if errs == nil {
		errs = []catalog.Error{}
	}
	return errs, nil
}

// Search 全文搜索
// 空白搜索词直接返回空结果，不触发存储调用
func (s *CatalogService) Search(ctx context.Context, query string) ([]catalog.Error, error) {
	keyword := strings.TrimSpace(query)
	if keyword == "" {
		return []catalog.Error{}, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	errs, err := s.errorStore.Search(ctx, keyword)
	if err != nil {
		return nil, storeError("search_errors", "Search failed", err)
	}
	if errs == nil {
		errs = []catalog.Error{}
	}
	return errs, nil
}

// GetBySlugAndRecordView 详情读取
// 命中时在同一个事务里递增阅读量并追加一条 view 日志；
// 未命中时不写任何日志。返回的是递增前的数据，当前请求看到的
// 阅读量允许滞后一次
func (s *CatalogService) GetBySlugAndRecordView(ctx context.Context, slug string) (*catalog.Error, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	e, err := s.errorStore.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Solution not found")
		}
		return nil, storeError("get_error", "Failed to fetch error", err)
	}

	if err := s.errorStore.RecordView(ctx, e.ID); err != nil {
		return nil, storeError("record_view", "Failed to fetch error", err)
	}

	return e, nil
}

// Like 点赞，与阅读计数同构的事务
func (s *CatalogService) Like(ctx context.Context, slug string) (uint, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	e, err := s.errorStore.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, response.NewNotFoundError("Solution not found")
		}
		return 0, storeError("get_error", "Failed to fetch error", err)
	}

	if err := s.errorStore.RecordLike(ctx, e.ID); err != nil {
		return 0, storeError("record_like", "Failed to record like", err)
	}

	return e.Likes + 1, nil
}

// Create 创建文章
func (s *CatalogService) Create(ctx context.Context, req dto.CreateErrorRequest) (*catalog.Error, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, response.NewValidationError(
			response.MissingRequiredField, "title and content are required")
	}

	slug := Slugify(title)
	if slug == "" {
		return nil, response.NewValidationError(
			response.UnsluggableTitle, "title must contain at least one letter or digit")
	}

	status := req.Status
	if status == "" {
		status = catalog.StatusPublished
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	// 分类必须已存在
	category, err := s.categoryStore.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewValidationError(
				response.UnknownCategory, "category does not exist")
		}
		return nil, storeError("get_category", "Failed to create error", err)
	}

	// 标签 find-or-create，空白名称跳过
	var tags []catalog.Tag
	for _, name := range req.Tags {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, err := s.tagStore.FindOrCreate(ctx, name)
		if err != nil {
			return nil, storeError("upsert_tag", "Failed to create error", err)
		}
		tags = append(tags, *tag)
	}

	e := &catalog.Error{
		Title:       title,
		Slug:        slug,
		Excerpt:     strings.TrimSpace(req.Excerpt),
		Content:     content,
		CategoryID:  category.ID,
		Subcategory: strings.TrimSpace(req.Subcategory),
		Status:      status,
		CreatedAt:   time.Now(),
		Tags:        tags,
	}

	if err := s.errorStore.Create(ctx, e); err != nil {
		// slug 唯一约束冲突按输入错误处理，绝不产生重复 slug
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewValidationError(
				response.DuplicateSlug, "an error with this title already exists")
		}
		return nil, storeError("create_error", "Failed to create error", err)
	}

	e.Category = *category
	return e, nil
}

// TrackAction 追加一条行为日志
func (s *CatalogService) TrackAction(ctx context.Context, errorID uint, action string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.analyticsStore.Create(ctx, errorID, action); err != nil {
		return storeError("track_action", "Failed to track analytics", err)
	}
	return nil
}

// Categories 全部分类及各自的公开文章数
func (s *CatalogService) Categories(ctx context.Context) ([]dto.CategorySummary, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	categories, err := s.categoryStore.List(ctx)
	if err != nil {
		return nil, storeError("list_categories", "Failed to fetch categories", err)
	}

	counts, err := s.categoryStore.PublishedCounts(ctx)
	if err != nil {
		return nil, storeError("count_categories", "Failed to fetch categories", err)
	}

	summaries := make([]dto.CategorySummary, 0, len(categories))
	for _, c := range categories {
		summaries = append(summaries, dto.CategorySummary{
			Category:   c,
			ErrorCount: counts[c.ID],
		})
	}
	return summaries, nil
}

// CategoryDetail 分类详情：分类信息 + 该分类下全部公开文章
func (s *CatalogService) CategoryDetail(ctx context.Context, slug string) (*dto.CategoryDetailResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	category, err := s.categoryStore.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Category not found")
		}
		return nil, storeError("get_category", "Failed to fetch category", err)
	}

	errs, err := s.errorStore.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, storeError("list_category_errors", "Failed to fetch category", err)
	}
	if errs == nil {
		errs = []catalog.Error{}
	}

	return &dto.CategoryDetailResponse{
		Category:   *category,
		ErrorCount: int64(len(errs)),
		Errors:     errs,
	}, nil
}
