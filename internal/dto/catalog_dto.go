package dto

import (
	"encoding/json"

	"debugops/server/internal/model/catalog"
)

// StringSlice 自定义字符串切片类型，支持空字符串解析
type StringSlice []string

// UnmarshalJSON 实现自定义JSON解析，处理空字符串情况
func (s *StringSlice) UnmarshalJSON(data []byte) error {
	// 处理空字符串的情况
	if string(data) == `""` || string(data) == `null` {
		*s = []string{}
		return nil
	}

	// 正常解析数组
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	*s = arr
	return nil
}

// CreateErrorRequest 创建文章请求
// 必填字段的空白校验在服务层做（trim 后判断），binding 只拦截字段缺失
type CreateErrorRequest struct {
	Title       string      `json:"title" binding:"required,max=255"`
	Content     string      `json:"content" binding:"required"`
	CategoryID  uint        `json:"categoryId" binding:"required"`
	Subcategory string      `json:"subcategory" binding:"max=100"`
	Excerpt     string      `json:"excerpt" binding:"max=500"`
	Tags        StringSlice `json:"tags"`
	// 可选，默认 PUBLISHED
	Status string `json:"status" binding:"omitempty,oneof=PUBLISHED DRAFT"`
}

// TrackAnalyticsRequest 行为上报请求
type TrackAnalyticsRequest struct {
	ErrorID uint   `json:"errorId" binding:"required"`
	Action  string `json:"action" binding:"required,max=50"`
}

// SearchResponse 搜索响应
type SearchResponse struct {
	Errors []catalog.Error `json:"errors"`
}

// ErrorDetailResponse 文章详情响应，附带渲染后的 HTML
type ErrorDetailResponse struct {
	catalog.Error
	ContentHTML string `json:"contentHtml"`
}

// LikeResponse 点赞响应
type LikeResponse struct {
	Success bool `json:"success"`
	Likes   uint `json:"likes"`
}

// CategorySummary 分类及其公开文章数
type CategorySummary struct {
	catalog.Category
	ErrorCount int64 `json:"errorCount"`
}

// CategoryDetailResponse 分类详情页数据
type CategoryDetailResponse struct {
	Category   catalog.Category `json:"category"`
	ErrorCount int64            `json:"errorCount"`
	Errors     []catalog.Error  `json:"errors"`
}
