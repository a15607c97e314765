package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/AFSHAL-7/trustlens/config"
	"github.com/AFSHAL-7/trustlens/internal/analyzer"
	"github.com/AFSHAL-7/trustlens/internal/eventbus"
	"github.com/AFSHAL-7/trustlens/internal/eventsubscriber"
	"github.com/AFSHAL-7/trustlens/internal/handler"
	"github.com/AFSHAL-7/trustlens/internal/pkg/artifact"
	"github.com/AFSHAL-7/trustlens/internal/pkg/database"
	"github.com/AFSHAL-7/trustlens/internal/pkg/remote"
	"github.com/AFSHAL-7/trustlens/internal/repository"
	"github.com/AFSHAL-7/trustlens/internal/router"
	"github.com/AFSHAL-7/trustlens/internal/service"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()

	if cfg.Database.Type == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.DSN), 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
	}

	// 初始化数据库
	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化 Repository
	analysisRepo := repository.NewAnalysisRepository(db)
	statsRepo := repository.NewUserStatsRepository(db)

	// 初始化事件总线与统计订阅
	bus := eventbus.NewBus()
	eventsubscriber.NewStatsSubscriber(statsRepo).Register(bus)

	// 归档存储可选，未配置时跳过
	var artifacts artifact.Store
	if store, err := artifact.NewMinioStore(cfg.Artifact); err != nil {
		klog.Errorf("归档存储初始化失败，已关闭归档: %v", err)
	} else if store != nil {
		artifacts = store
	}

	// 初始化分析引擎
	remoteClient := remote.NewClient(cfg)
	orchestrator := analyzer.NewOrchestrator(remoteClient)

	// 初始化 Service
	analysisService := service.NewAnalysisService(orchestrator, analysisRepo, artifacts, bus)
	statsService := service.NewStatsService(statsRepo)

	// 初始化 Handler
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	statsHandler := handler.NewStatsHandler(statsService)

	// 设置路由
	r := router.Setup(cfg, analysisHandler, statsHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
