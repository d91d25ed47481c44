package catalog

import "time"

// Tag 标签表
// name 全局唯一，首次使用时创建，之后复用
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"type:varchar(50);not null" json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}
