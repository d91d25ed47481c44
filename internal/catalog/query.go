package catalog

import (
	"strconv"
	"strings"
)

const (
	// DefaultListLimit 列表接口默认返回条数
	DefaultListLimit = 20
	// SearchLimit 搜索接口固定返回条数
	SearchLimit = 10
	// CategoryAll 分类筛选的哨兵值，等价于不筛选
	CategoryAll = "all"
)

// ListQuery 列表查询条件
// 由请求参数纯函数构造，不做任何 IO
type ListQuery struct {
	// 空字符串表示不按分类筛选
	CategorySlug string
	// 空字符串表示没有搜索词；非空时对 title/excerpt/content 做不区分大小写的子串匹配
	Search string
	Limit  int
}

// ParseListQuery 解析列表请求参数
// category 为空或 "all" 时不加分类约束；搜索词先 trim，全空白视为不存在；
// limit 解析失败或非正数时回退为默认值
func ParseListQuery(category, search, limit string) ListQuery {
	q := ListQuery{Limit: DefaultListLimit}

	if category != "" && category != CategoryAll {
		q.CategorySlug = category
	}

	q.Search = strings.TrimSpace(search)

	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		q.Limit = n
	}

	return q
}

// HasSearch 是否带搜索词
func (q ListQuery) HasSearch() bool {
	return q.Search != ""
}
