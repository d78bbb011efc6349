package db

import "time"

// AboutSection 保存关于区块的单例父记录。
type AboutSection struct {
	ID        string `gorm:"primaryKey;size:64"`
	Title     string `gorm:"size:255;not null"`
	Subtitle  string `gorm:"size:255"`
	Image     string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AboutSection) TableName() string {
	return "about_section"
}

// AboutParagraph 是关于区块的正文段落，按 DisplayOrder 升序展示。
type AboutParagraph struct {
	ID           uint         `gorm:"primaryKey"`
	SectionID    string       `gorm:"size:64;not null;index"`
	Section      AboutSection `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
	Text         string       `gorm:"type:text;not null"`
	DisplayOrder int          `gorm:"not null;default:0"`
}

func (AboutParagraph) TableName() string {
	return "about_paragraphs"
}

// AboutTrait 是关于区块的特质条目，Icon 匹配前端内置图标。
type AboutTrait struct {
	ID           uint         `gorm:"primaryKey"`
	SectionID    string       `gorm:"size:64;not null;index"`
	Section      AboutSection `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
	Icon         string       `gorm:"size:50"`
	Text         string       `gorm:"size:255;not null"`
	DisplayOrder int          `gorm:"not null;default:0"`
}

func (AboutTrait) TableName() string {
	return "about_traits"
}
