package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"debugops/server/config"
	"debugops/server/internal/database"
	"debugops/server/internal/route"
)

func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")

	// 2. 初始化日志
	initLogger()

	// 3. 初始化数据库
	database.InitDatabase()

	// 4. 设置路由
	r := route.SetupRouter(database.GetDB())

	// 5. 启动服务
	serverConf := config.Conf.Server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", serverConf.Host, serverConf.Port),
		Handler:      r,
		ReadTimeout:  serverConf.ReadTimeout,
		WriteTimeout: serverConf.WriteTimeout,
	}

	log.Info().Str("addr", srv.Addr).Msg("debugops server listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func initLogger() {
	logConf := config.Conf.Log

	level, err := zerolog.ParseLevel(logConf.Level)
	if err != nil || logConf.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if logConf.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
