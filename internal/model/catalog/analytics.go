package catalog

import "time"

// 行为类型
const (
	ActionView = "view"
	ActionLike = "like"
)

// Analytics 行为日志表
// 只追加，核心逻辑不会修改或删除已有记录
type Analytics struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	ErrorID uint   `gorm:"not null;index" json:"errorId"`
	Action  string `gorm:"type:varchar(50);not null" json:"action"`
	// 记录发生时间
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}
