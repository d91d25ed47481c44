package catalog

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRun   = regexp.MustCompile(`[^a-z0-9]+`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Slugify 由标题派生 slug
// 规则：转小写，连续的非 [a-z0-9] 字符合并为单个连字符，去掉首尾连字符。
// 任何输入都会产生一个结果，标题完全没有字母数字时结果为空字符串，
// 由调用方当作校验失败处理
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonAlnumRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugifyTag 由标签名派生 slug：转小写，空白合并为连字符
func SlugifyTag(name string) string {
	s := strings.ToLower(name)
	return whitespaceRun.ReplaceAllString(s, "-")
}
