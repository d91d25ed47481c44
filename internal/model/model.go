package model

import (
	"gorm.io/gorm"

	"debugops/server/internal/model/catalog"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		&catalog.Category{},
		&catalog.Tag{},
		&catalog.Error{},
		&catalog.Analytics{},
	)
	if err != nil {
		return err
	}
	return nil
}
