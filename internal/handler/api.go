package handler

import (
	"github.com/rejoanafridi/my-porfolio-sub000/internal/config"
	"github.com/rejoanafridi/my-porfolio-sub000/internal/service"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	site       *service.SiteService
	sections   *service.SectionService
	siteConfig *service.SiteConfigService
	media      service.MediaStore
	log        zerolog.Logger
}

// NewAPI constructs a handler set with shared services. The media
// store is remote when MEDIA_UPLOAD_URL is configured, local otherwise.
func NewAPI(gdb *gorm.DB, site *service.SiteService, cfg config.AppConfig, log zerolog.Logger) *API {
	var media service.MediaStore
	if cfg.MediaUploadURL != "" {
		media = service.NewRemoteMediaStore(cfg.MediaUploadURL, cfg.MediaUploadPreset)
	} else {
		media = service.NewLocalMediaStore(cfg.UploadDir, cfg.UploadURLPath)
	}

	return &API{
		db:         gdb,
		site:       site,
		sections:   service.NewSectionService(gdb),
		siteConfig: service.NewSiteConfigService(gdb),
		media:      media,
		log:        log,
	}
}

// SetMediaStore 替换上传后端，主要面向测试场景。
func (a *API) SetMediaStore(store service.MediaStore) {
	a.media = store
}
