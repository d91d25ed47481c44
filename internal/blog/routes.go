package blog

import (
	"github.com/gin-gonic/gin"
)

// SetupBlogRoutes 设置博客相关路由
func SetupBlogRoutes(r *gin.RouterGroup) {
	blogHandler := NewBlogHandler()

	blogGroup := r.Group("/blog")
	{
		blogGroup.GET("", blogHandler.GetPosts)      // 博客列表
		blogGroup.GET("/:slug", blogHandler.GetPost) // 博客详情
	}
}
