package catalog

import "time"

// 文章发布状态
const (
	StatusPublished = "PUBLISHED"
	StatusDraft     = "DRAFT"
)

// Error 错误解决方案文章表
type Error struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"type:varchar(255);not null" json:"title"`
	// 由标题派生的唯一标识，用于详情页 URL
	Slug    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Excerpt string `gorm:"type:varchar(500)" json:"excerpt"`
	// Markdown 原文
	Content    string `gorm:"type:text;not null" json:"content"`
	CategoryID uint   `gorm:"not null;index" json:"categoryId"`
	// 自由文本子分类（如 Docker、Kubernetes）
	Subcategory string `gorm:"type:varchar(100)" json:"subcategory"`
	// 状态: PUBLISHED, DRAFT；公开列表只返回 PUBLISHED
	Status string `gorm:"type:varchar(20);default:'PUBLISHED';index" json:"status"`
	// 阅读量，只由详情页事务递增
	Views uint `gorm:"default:0" json:"views"`
	// 点赞量，只由点赞事务递增
	Likes     uint      `gorm:"default:0" json:"likes"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
	Tags     []Tag    `gorm:"many2many:error_tags" json:"tags"`
}
