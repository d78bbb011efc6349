package db

import "time"

// HeroSection 保存首屏区块的单例记录，主键为固定的区块标识。
type HeroSection struct {
	ID               string `gorm:"primaryKey;size:64"`
	Title            string `gorm:"size:255;not null"`
	Name             string `gorm:"size:255"`
	Subtitle         string `gorm:"size:255"`
	Description      string `gorm:"type:text"`
	CtaText          string `gorm:"column:cta_text;size:100"`
	SecondaryCtaText string `gorm:"column:secondary_cta_text;size:100"`
	ResumeButtonText string `gorm:"size:100"`
	ResumeLink       string `gorm:"size:255"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName 返回固定的单数表名。
func (HeroSection) TableName() string {
	return "hero_section"
}
