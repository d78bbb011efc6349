package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rejoanafridi/my-porfolio-sub000/internal/db"
	"gorm.io/gorm"
)

const siteConfigID = "site"

// SiteConfigService 提供站点元信息单例的读取与保存能力。
type SiteConfigService struct {
	db *gorm.DB
}

// NewSiteConfigService 构造 SiteConfigService。
func NewSiteConfigService(gdb *gorm.DB) *SiteConfigService {
	return &SiteConfigService{db: gdb}
}

// Get 读取站点元信息，尚未保存时返回默认值。
func (s *SiteConfigService) Get() (*SiteConfigDocument, error) {
	var row db.SiteConfig
	if err := s.db.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			def := DefaultSiteConfig()
			return &def, nil
		}
		return nil, fmt.Errorf("load site config: %w", err)
	}

	return &SiteConfigDocument{
		ID:            row.ID,
		SiteName:      row.SiteName,
		Description:   row.Description,
		SiteURL:       row.SiteURL,
		LogoURL:       row.LogoURL,
		FaviconURL:    row.FaviconURL,
		MetaImageURL:  row.MetaImageURL,
		FooterText:    row.FooterText,
		CopyrightText: row.CopyrightText,
	}, nil
}

// Save 整体覆盖站点元信息，站点名称缺失时回退默认值。
func (s *SiteConfigService) Save(doc *SiteConfigDocument) (*SiteConfigDocument, error) {
	sanitized := *doc
	if strings.TrimSpace(sanitized.ID) == "" {
		sanitized.ID = siteConfigID
	}
	if strings.TrimSpace(sanitized.SiteName) == "" {
		sanitized.SiteName = DefaultSiteConfig().SiteName
	}

	row := db.SiteConfig{
		ID:            sanitized.ID,
		SiteName:      sanitized.SiteName,
		Description:   sanitized.Description,
		SiteURL:       sanitized.SiteURL,
		LogoURL:       sanitized.LogoURL,
		FaviconURL:    sanitized.FaviconURL,
		MetaImageURL:  sanitized.MetaImageURL,
		FooterText:    sanitized.FooterText,
		CopyrightText: sanitized.CopyrightText,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return upsertByID(tx, &row)
	})
	if err != nil {
		return nil, fmt.Errorf("save site config: %w", err)
	}
	return &sanitized, nil
}
