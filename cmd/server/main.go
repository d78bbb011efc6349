package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rejoanafridi/my-porfolio-sub000/internal/config"
	"github.com/rejoanafridi/my-porfolio-sub000/internal/db"
	"github.com/rejoanafridi/my-porfolio-sub000/internal/handler"
	"github.com/rejoanafridi/my-porfolio-sub000/internal/router"
	"github.com/rejoanafridi/my-porfolio-sub000/internal/service"
	"github.com/rejoanafridi/my-porfolio-sub000/pkg/logger"
)

func main() {
	log := logger.New()
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	sections := service.NewSectionService(db.DB)
	snapshot := service.NewSnapshotStore(cfg.SnapshotPath)
	site := service.NewSiteService(db.DB, sections, snapshot, log)

	// 启动流程：建表检查 → 默认内容种子 → 对外服务
	if err := site.Bootstrap(); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap schema")
	}
	if err := site.SeedIfEmpty(); err != nil {
		log.Fatal().Err(err).Msg("failed to seed default content")
	}
	if err := db.EnsureAdminUser(db.DB, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure admin user")
	}
	site.MarkServing()

	api := handler.NewAPI(db.DB, site, cfg, log)
	r := router.Setup(api, cfg.SessionSecret, cfg.UploadDir, cfg.UploadURLPath)

	log.Info().Str("addr", cfg.ListenAddr).Msg("starting portfolio server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}
