package catalog

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"debugops/server/internal/dto"
	"debugops/server/internal/markdown"
	"debugops/server/internal/response"
)

type CatalogHandler struct {
	catalogService *CatalogService
}

func NewCatalogHandler(db *gorm.DB, storeTimeout time.Duration) *CatalogHandler {
	errorRepo := NewErrorRepository(db)
	categoryRepo := NewCategoryRepository(db)
	tagRepo := NewTagRepository(db)
	analyticsRepo := NewAnalyticsRepository(db)

	return &CatalogHandler{
		catalogService: NewCatalogService(errorRepo, categoryRepo, tagRepo, analyticsRepo, storeTimeout),
	}
}

// GetErrors 获取文章列表
// @Summary 获取公开文章列表（可按分类、搜索词过滤）
// @Tags Errors
// @Accept json
// @Produce json
// @Param category query string false "分类slug，all 或缺省表示全部"
// @Param q query string false "搜索词"
// @Param limit query int false "返回条数" default(20)
// @Success 200 {array} catalog.Error
// @Router /api/errors [get]
func (h *CatalogHandler) GetErrors(c *gin.Context) {
	q := ParseListQuery(
		c.Query("category"),
		c.Query("q"),
		c.Query("limit"),
	)

	errs, err := h.catalogService.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	dto.SuccessResponse(c, errs)
}

// CreateError 创建文章
// @Summary 创建文章（标题派生slug，标签按名称复用或新建）
// @Tags Errors
// @Accept json
// @Produce json
// @Param request body dto.CreateErrorRequest true "创建文章请求"
// @Success 200 {object} catalog.Error
// @Failure 400 {object} response.ErrorBody
// @Router /api/errors [post]
func (h *CatalogHandler) CreateError(c *gin.Context) {
	var req dto.CreateErrorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	created, err := h.catalogService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	dto.SuccessResponse(c, created)
}

// GetError 获取文章详情
// @Summary 按 slug 获取文章详情，同时记录一次阅读
// @Tags Errors
// @Accept json
// @Produce json
// @Param slug path string true "文章slug"
// @Success 200 {object} dto.ErrorDetailResponse
// @Failure 404 {object} response.ErrorBody
// @Router /api/errors/{slug} [get]
func (h *CatalogHandler) GetError(c *gin.Context) {
	e, err := h.catalogService.GetBySlugAndRecordView(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	// 渲染失败不阻塞详情返回，前端可退回展示 Markdown 原文
	contentHTML, err := markdown.Render(e.Content)
	if err != nil {
		log.Warn().Err(err).Str("slug", e.Slug).Msg("markdown render failed")
	}

	dto.SuccessResponse(c, dto.ErrorDetailResponse{
		Error:       *e,
		ContentHTML: contentHTML,
	})
}

// LikeError 点赞
// @Summary 点赞（likes+1 并追加一条 like 日志，同一事务）
// @Tags Errors
// @Accept json
// @Produce json
// @Param slug path string true "文章slug"
// @Success 200 {object} dto.LikeResponse
// @Failure 404 {object} response.ErrorBody
// @Router /api/errors/{slug}/like [post]
func (h *CatalogHandler) LikeError(c *gin.Context) {
	likes, err := h.catalogService.Like(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.SuccessResponse(c, dto.LikeResponse{Success: true, Likes: likes})
}

// SearchErrors 搜索
// @Summary 全文搜索，热门（阅读量高）结果优先
// @Tags Search
// @Accept json
// @Produce json
// @Param q query string false "搜索词，空白时直接返回空结果"
// @Success 200 {object} dto.SearchResponse
// @Router /api/search [get]
func (h *CatalogHandler) SearchErrors(c *gin.Context) {
	errs, err := h.catalogService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.SuccessResponse(c, dto.SearchResponse{Errors: errs})
}

// TrackAnalytics 行为上报
// @Summary 追加一条行为日志
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body dto.TrackAnalyticsRequest true "行为上报请求"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} response.ErrorBody
// @Router /api/analytics [post]
func (h *CatalogHandler) TrackAnalytics(c *gin.Context) {
	var req dto.TrackAnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if err := h.catalogService.TrackAction(c.Request.Context(), req.ErrorID, req.Action); err != nil {
		respondError(c, err)
		return
	}

	dto.SuccessResponse(c, gin.H{"success": true})
}

// GetCategories 获取分类列表
// @Summary 获取全部分类及各自的解决方案数量
// @Tags Categories
// @Accept json
// @Produce json
// @Success 200 {array} dto.CategorySummary
// @Router /api/categories [get]
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	dto.SuccessResponse(c, categories)
}

// GetCategory 获取分类详情
// @Summary 获取分类信息及该分类下全部公开文章
// @Tags Categories
// @Accept json
// @Produce json
// @Param slug path string true "分类slug"
// @Success 200 {object} dto.CategoryDetailResponse
// @Failure 404 {object} response.ErrorBody
// @Router /api/categories/{slug} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	detail, err := h.catalogService.CategoryDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.SuccessResponse(c, detail)
}

// respondError 业务错误按携带的状态码返回，其他错误一律按 500 处理
func respondError(c *gin.Context, err error) {
	if be, ok := response.AsBusinessError(err); ok {
		dto.ErrorResponse(c, be)
		return
	}
	dto.ErrorResponse(c, response.NewStoreError("Internal server error", err))
}
