package route

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"debugops/server/config"
	"debugops/server/internal/blog"
	"debugops/server/internal/catalog"
)

func initRoute(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	catalog.SetupCatalogRoutes(api, db, config.Conf.Database.StoreTimeoutDuration())
	blog.SetupBlogRoutes(api)
}

func SetupRouter(db *gorm.DB) *gin.Engine {
	if config.Conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:3000" // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{origin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	initRoute(r, db)

	return r
}
