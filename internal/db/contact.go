package db

import "time"

// ContactSection 保存联系区块的单例父记录。
type ContactSection struct {
	ID        string `gorm:"primaryKey;size:64"`
	Title     string `gorm:"size:255;not null"`
	Subtitle  string `gorm:"size:255"`
	Email     string `gorm:"size:255"`
	Location  string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ContactSection) TableName() string {
	return "contact_section"
}

// ContactSocial 是社交链接条目，Icon 匹配前端内置图标。
type ContactSocial struct {
	ID           uint           `gorm:"primaryKey"`
	SectionID    string         `gorm:"size:64;not null;index"`
	Section      ContactSection `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
	Platform     string         `gorm:"size:100;not null"`
	URL          string         `gorm:"column:url;size:255;not null"`
	Icon         string         `gorm:"size:50"`
	DisplayOrder int            `gorm:"not null;default:0"`
}

func (ContactSocial) TableName() string {
	return "contact_socials"
}
