package catalog

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCatalogRoutes 设置内容相关路由
func SetupCatalogRoutes(r *gin.RouterGroup, db *gorm.DB, storeTimeout time.Duration) {
	// 初始化handler（内部会自动初始化所有依赖）
	catalogHandler := NewCatalogHandler(db, storeTimeout)

	errors := r.Group("/errors")
	{
		errors.GET("", catalogHandler.GetErrors)             // 文章列表（分类/搜索/条数过滤）
		errors.POST("", catalogHandler.CreateError)          // 创建文章
		errors.GET("/:slug", catalogHandler.GetError)        // 文章详情（记录一次阅读）
		errors.POST("/:slug/like", catalogHandler.LikeError) // 点赞
	}

	r.GET("/search", catalogHandler.SearchErrors)        // 全文搜索
	r.POST("/analytics", catalogHandler.TrackAnalytics) // 行为上报

	categories := r.Group("/categories")
	{
		categories.GET("", catalogHandler.GetCategories)     // 分类列表（带文章数）
		categories.GET("/:slug", catalogHandler.GetCategory) // 分类详情
	}
}
