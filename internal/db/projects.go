package db

import "time"

// ProjectsSection 保存项目区块的单例父记录。
type ProjectsSection struct {
	ID        string `gorm:"primaryKey;size:64"`
	Title     string `gorm:"size:255;not null"`
	Subtitle  string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProjectsSection) TableName() string {
	return "projects_section"
}

// Project 携带稳定主键；技术栈子表以项目主键为外键整体重建。
type Project struct {
	ID           string          `gorm:"primaryKey;size:64"`
	SectionID    string          `gorm:"size:64;not null;index"`
	Section      ProjectsSection `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
	Title        string          `gorm:"size:255;not null"`
	Description  string          `gorm:"type:text"`
	Image        string          `gorm:"size:255"`
	DemoLink     string          `gorm:"size:255"`
	GithubLink   string          `gorm:"size:255"`
	Featured     bool            `gorm:"not null;default:false"`
	DisplayOrder int             `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Project) TableName() string {
	return "projects"
}

// ProjectTechStack 是项目的技术栈条目，仅由顺序定义身份。
type ProjectTechStack struct {
	ID           uint    `gorm:"primaryKey"`
	ProjectID    string  `gorm:"size:64;not null;index"`
	Project      Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Name         string  `gorm:"size:100;not null"`
	Icon         string  `gorm:"size:50"`
	DisplayOrder int     `gorm:"not null;default:0"`
}

func (ProjectTechStack) TableName() string {
	return "project_tech_stack"
}
