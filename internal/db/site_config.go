package db

import "time"

// SiteConfig 存储站点级元信息的单例平铺记录，不再拆分子表。
type SiteConfig struct {
	ID            string `gorm:"primaryKey;size:64"`
	SiteName      string `gorm:"size:255;not null"`
	Description   string `gorm:"type:text"`
	SiteURL       string `gorm:"size:255"`
	LogoURL       string `gorm:"size:255"`
	FaviconURL    string `gorm:"size:255"`
	MetaImageURL  string `gorm:"size:255"`
	FooterText    string `gorm:"size:255"`
	CopyrightText string `gorm:"size:255"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName 返回固定的单数表名。
func (SiteConfig) TableName() string {
	return "site_config"
}
