// Package markdown 把文章的 Markdown 原文渲染为可直接嵌入页面的 HTML
package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
	// 内容来自用户提交，渲染结果必须过一遍白名单过滤
	policy = bluemonday.UGCPolicy()
)

// Render 渲染并过滤 Markdown
// 渲染失败时返回空字符串，调用方可以退回展示原文
func Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}
