// @title LearnHub 后端 API
// @version 1.0
// @description LearnHub 学习平台的后端服务：课程目录、学习进度与结课证书。

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"
	"path/filepath"

	"learnhub_backend/internal/app"
	"learnhub_backend/internal/config"
	"learnhub_backend/pkg/configwatcher"
	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置热更新：目前只在运行中调整日志级别，端口等改动需重启
	go configwatcher.WatchConfig(filepath.Join(*configDir, "config.yaml"), func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
		logger.Log.Info("config reloaded", zap.String("mode", newCfg.Server.Mode))
	})

	application.Run()
}
