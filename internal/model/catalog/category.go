// Package catalog 错误解决方案内容相关模型
package catalog

import "time"

// Category 分类表
// 由种子数据创建，创建后不再修改
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Slug        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:varchar(255)" json:"description"`
	// 前端图标标识（如 Wrench / Code / Shield / Terminal）
	Icon string `gorm:"type:varchar(50)" json:"icon"`
	// 前端颜色样式标识（如 bg-blue-500）
	Color     string    `gorm:"type:varchar(50)" json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}
