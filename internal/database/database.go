package database

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"debugops/server/config"
	"debugops/server/internal/model"
)

var (
	PostgresDB *gorm.DB
)

func InitDatabase() {
	initPostgres()
}

func initPostgres() {
	databaseConf := config.Conf.Database

	var err error
	PostgresDB, err = InitPostgres(
		&PostgresConfig{
			Username:        databaseConf.Username,
			Password:        databaseConf.Password,
			Host:            databaseConf.Host,
			Port:            databaseConf.Port,
			Database:        databaseConf.Database,
			SSLMode:         databaseConf.SSLMode,
			LogLevel:        databaseConf.LogLevel,
			MaxIdleConns:    databaseConf.MaxIdleConns,
			MaxOpenConns:    databaseConf.MaxOpenConns,
			ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
		},
	)

	if err != nil {
		log.Fatal().Err(err).Msg("数据库连接失败")
	}

	// 初始化数据库表
	if err = model.InitTable(PostgresDB); err != nil {
		log.Fatal().Err(err).Msg("数据库表初始化失败")
	}

	log.Info().Str("database", databaseConf.Database).Msg("数据库连接成功")
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return PostgresDB
}
