package db

import "time"

// SkillsSection 保存技能区块的单例父记录。
type SkillsSection struct {
	ID        string `gorm:"primaryKey;size:64"`
	Title     string `gorm:"size:255;not null"`
	Subtitle  string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SkillsSection) TableName() string {
	return "skills_section"
}

// Skill 携带调用方可见的稳定主键，跨保存保持身份以支持拖拽排序。
type Skill struct {
	ID           string        `gorm:"primaryKey;size:64"`
	SectionID    string        `gorm:"size:64;not null;index"`
	Section      SkillsSection `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
	Name         string        `gorm:"size:100;not null"`
	Icon         string        `gorm:"size:50"`
	Color        string        `gorm:"size:50"`
	DisplayOrder int           `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Skill) TableName() string {
	return "skills"
}
