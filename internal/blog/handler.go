package blog

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"debugops/server/internal/dto"
	"debugops/server/internal/markdown"
	"debugops/server/internal/response"
)

type BlogHandler struct{}

func NewBlogHandler() *BlogHandler {
	return &BlogHandler{}
}

// PostDetail 博客详情响应，正文渲染为 HTML
type PostDetail struct {
	Post
	ContentHTML string `json:"contentHtml"`
}

// GetPosts 获取博客列表
// @Summary 获取全部博客文章（不含正文）
// @Tags Blog
// @Accept json
// @Produce json
// @Success 200 {array} blog.Post
// @Router /api/blog [get]
func (h *BlogHandler) GetPosts(c *gin.Context) {
	dto.SuccessResponse(c, List())
}

// GetPost 获取博客详情
// @Summary 按 slug 获取博客文章，正文渲染为 HTML
// @Tags Blog
// @Accept json
// @Produce json
// @Param slug path string true "博客slug"
// @Success 200 {object} blog.PostDetail
// @Failure 404 {object} response.ErrorBody
// @Router /api/blog/{slug} [get]
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, ok := GetBySlug(c.Param("slug"))
	if !ok {
		dto.ErrorResponse(c, response.NewNotFoundError("Post not found"))
		return
	}

	contentHTML, err := markdown.Render(post.Content)
	if err != nil {
		log.Warn().Err(err).Str("slug", post.Slug).Msg("markdown render failed")
	}

	dto.SuccessResponse(c, PostDetail{Post: post, ContentHTML: contentHTML})
}
