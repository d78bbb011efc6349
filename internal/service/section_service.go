package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rejoanafridi/my-porfolio-sub000/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrSectionNotFound 在请求的区块尚未写入时返回
	ErrSectionNotFound = errors.New("section not found")
	// ErrUnknownSection 在区块标识不属于固定集合时返回
	ErrUnknownSection = errors.New("unknown section kind")
	// ErrInvalidDocument 在文档缺少必填字段时返回，拒绝于任何写入之前
	ErrInvalidDocument = errors.New("invalid section document")
)

// SectionService 独占嵌套文档与关系行之间的映射。
// 读取按 display_order 升序装配子集合；替换在单个事务内整体覆盖
// 父行并以"全删全插"重建纯顺序子集合，数组下标即 display_order。

type SectionService struct {
	db *gorm.DB
}

// NewSectionService 构造 SectionService
func NewSectionService(gdb *gorm.DB) *SectionService {
	return &SectionService{db: gdb}
}

type sectionOps struct {
	read    func(s *SectionService) (interface{}, error)
	replace func(s *SectionService, raw json.RawMessage) (interface{}, error)
}

// sectionRegistry is the single dispatch table for the five kinds; the
// coordinator and the :section routes go through it instead of
// switching on kind themselves.
var sectionRegistry = map[SectionKind]sectionOps{
	SectionHero: {
		read: func(s *SectionService) (interface{}, error) { return s.ReadHero() },
		replace: func(s *SectionService, raw json.RawMessage) (interface{}, error) {
			var doc HeroDocument
			if err := json.Unmarshal(raw, &doc); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
			}
			if err := s.ReplaceHero(&doc); err != nil {
				return nil, err
			}
			return &doc, nil
		},
	},
	SectionAbout: {
		read: func(s *SectionService) (interface{}, error) { return s.ReadAbout() },
		replace: func(s *SectionService, raw json.RawMessage) (interface{}, error) {
			var doc AboutDocument
			if err := json.Unmarshal(raw, &doc); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
			}
			if err := s.ReplaceAbout(&doc); err != nil {
				return nil, err
			}
			return &doc, nil
		},
	},
	SectionSkills: {
		read: func(s *SectionService) (interface{}, error) { return s.ReadSkills() },
		replace: func(s *SectionService, raw json.RawMessage) (interface{}, error) {
			var doc SkillsDocument
			if err := json.Unmarshal(raw, &doc); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
			}
			if err := s.ReplaceSkills(&doc); err != nil {
				return nil, err
			}
			return &doc, nil
		},
	},
	SectionProjects: {
		read: func(s *SectionService) (interface{}, error) { return s.ReadProjects() },
		replace: func(s *SectionService, raw json.RawMessage) (interface{}, error) {
			var doc ProjectsDocument
			if err := json.Unmarshal(raw, &doc); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
			}
			if err := s.ReplaceProjects(&doc); err != nil {
				return nil, err
			}
			return &doc, nil
		},
	},
	SectionContact: {
		read: func(s *SectionService) (interface{}, error) { return s.ReadContact() },
		replace: func(s *SectionService, raw json.RawMessage) (interface{}, error) {
			var doc ContactDocument
			if err := json.Unmarshal(raw, &doc); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
			}
			if err := s.ReplaceContact(&doc); err != nil {
				return nil, err
			}
			return &doc, nil
		},
	},
}

// ParseSectionKind validates a raw path segment against the fixed set.
func ParseSectionKind(raw string) (SectionKind, error) {
	kind := SectionKind(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := sectionRegistry[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, raw)
	}
	return kind, nil
}

// ReadSection dispatches a read through the registry.
func (s *SectionService) ReadSection(kind SectionKind) (interface{}, error) {
	ops, ok := sectionRegistry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, kind)
	}
	return ops.read(s)
}

// ReplaceSection decodes and replaces a section from raw JSON, returning
// the echoed document as the new canonical state.
func (s *SectionService) ReplaceSection(kind SectionKind, raw json.RawMessage) (interface{}, error) {
	ops, ok := sectionRegistry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, kind)
	}
	return ops.replace(s, raw)
}

// ReadHero 读取首屏区块
func (s *SectionService) ReadHero() (*HeroDocument, error) {
	var row db.HeroSection
	if err := s.db.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("read hero section: %w", err)
	}

	return &HeroDocument{
		ID:               row.ID,
		Title:            row.Title,
		Name:             row.Name,
		Subtitle:         row.Subtitle,
		Description:      row.Description,
		CtaText:          row.CtaText,
		SecondaryCtaText: row.SecondaryCtaText,
		ResumeButtonText: row.ResumeButtonText,
		ResumeLink:       row.ResumeLink,
	}, nil
}

// ReplaceHero 整体覆盖首屏区块，缺失的标量按空值写入
func (s *SectionService) ReplaceHero(doc *HeroDocument) error {
	if err := requireParent(doc.ID, doc.Title, "hero"); err != nil {
		return err
	}

	row := db.HeroSection{
		ID:               doc.ID,
		Title:            doc.Title,
		Name:             doc.Name,
		Subtitle:         doc.Subtitle,
		Description:      doc.Description,
		CtaText:          doc.CtaText,
		SecondaryCtaText: doc.SecondaryCtaText,
		ResumeButtonText: doc.ResumeButtonText,
		ResumeLink:       doc.ResumeLink,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return upsertByID(tx, &row)
	})
	if err != nil {
		return fmt.Errorf("replace hero section: %w", err)
	}
	return nil
}

// ReadAbout 读取关于区块及其段落、特质子集合
func (s *SectionService) ReadAbout() (*AboutDocument, error) {
	var row db.AboutSection
	if err := s.db.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("read about section: %w", err)
	}

	var paragraphs []db.AboutParagraph
	if err := s.db.Where("section_id = ?", row.ID).
		Order("display_order ASC, id ASC").Find(&paragraphs).Error; err != nil {
		return nil, fmt.Errorf("read about paragraphs: %w", err)
	}

	var traits []db.AboutTrait
	if err := s.db.Where("section_id = ?", row.ID).
		Order("display_order ASC, id ASC").Find(&traits).Error; err != nil {
		return nil, fmt.Errorf("read about traits: %w", err)
	}

	doc := &AboutDocument{
		ID:          row.ID,
		Title:       row.Title,
		Subtitle:    row.Subtitle,
		Image:       row.Image,
		Description: make([]string, 0, len(paragraphs)),
		Traits:      make([]TraitItem, 0, len(traits)),
	}
	for _, p := range paragraphs {
		doc.Description = append(doc.Description, p.Text)
	}
	for _, t := range traits {
		doc.Traits = append(doc.Traits, TraitItem{Icon: t.Icon, Text: t.Text})
	}
	return doc, nil
}

// ReplaceAbout 整体覆盖关于区块；段落与特质为纯顺序子集合，全删全插
func (s *SectionService) ReplaceAbout(doc *AboutDocument) error {
	if err := requireParent(doc.ID, doc.Title, "about"); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		parent := db.AboutSection{ID: doc.ID, Title: doc.Title, Subtitle: doc.Subtitle, Image: doc.Image}
		if err := upsertByID(tx, &parent); err != nil {
			return err
		}

		if err := tx.Where("section_id = ?", doc.ID).Delete(&db.AboutParagraph{}).Error; err != nil {
			return err
		}
		if len(doc.Description) > 0 {
			rows := make([]db.AboutParagraph, 0, len(doc.Description))
			for i, text := range doc.Description {
				rows = append(rows, db.AboutParagraph{SectionID: doc.ID, Text: text, DisplayOrder: i})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("section_id = ?", doc.ID).Delete(&db.AboutTrait{}).Error; err != nil {
			return err
		}
		if len(doc.Traits) > 0 {
			rows := make([]db.AboutTrait, 0, len(doc.Traits))
			for i, trait := range doc.Traits {
				rows = append(rows, db.AboutTrait{SectionID: doc.ID, Icon: trait.Icon, Text: trait.Text, DisplayOrder: i})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace about section: %w", err)
	}
	return nil
}

// ReadSkills 读取技能区块
func (s *SectionService) ReadSkills() (*SkillsDocument, error) {
	var row db.SkillsSection
	if err := s.db.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("read skills section: %w", err)
	}

	var skills []db.Skill
	if err := s.db.Where("section_id = ?", row.ID).
		Order("display_order ASC, id ASC").Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("read skills: %w", err)
	}

	doc := &SkillsDocument{
		ID:       row.ID,
		Title:    row.Title,
		Subtitle: row.Subtitle,
		Skills:   make([]SkillItem, 0, len(skills)),
	}
	for _, skill := range skills {
		doc.Skills = append(doc.Skills, SkillItem{ID: skill.ID, Name: skill.Name, Icon: skill.Icon, Color: skill.Color})
	}
	return doc, nil
}

// ReplaceSkills 整体覆盖技能区块。技能携带稳定主键：已有 id 按主键
// 更新保持身份，空 id 现场生成，未出现在文档中的行被删除。
func (s *SectionService) ReplaceSkills(doc *SkillsDocument) error {
	if err := requireParent(doc.ID, doc.Title, "skills"); err != nil {
		return err
	}
	for _, skill := range doc.Skills {
		if strings.TrimSpace(skill.Name) == "" {
			return fmt.Errorf("%w: skill requires a name", ErrInvalidDocument)
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		parent := db.SkillsSection{ID: doc.ID, Title: doc.Title, Subtitle: doc.Subtitle}
		if err := upsertByID(tx, &parent); err != nil {
			return err
		}

		keep := make([]string, 0, len(doc.Skills))
		for i := range doc.Skills {
			item := &doc.Skills[i]
			if strings.TrimSpace(item.ID) == "" {
				item.ID = uuid.NewString()
			}
			row := db.Skill{
				ID:           item.ID,
				SectionID:    doc.ID,
				Name:         item.Name,
				Icon:         item.Icon,
				Color:        item.Color,
				DisplayOrder: i,
			}
			if err := upsertByID(tx, &row); err != nil {
				return err
			}
			keep = append(keep, item.ID)
		}

		stale := tx.Where("section_id = ?", doc.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		return stale.Delete(&db.Skill{}).Error
	})
	if err != nil {
		return fmt.Errorf("replace skills section: %w", err)
	}
	return nil
}

// ReadProjects 读取项目区块，并为每个项目装配技术栈子集合
func (s *SectionService) ReadProjects() (*ProjectsDocument, error) {
	var row db.ProjectsSection
	if err := s.db.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("read projects section: %w", err)
	}

	var projects []db.Project
	if err := s.db.Where("section_id = ?", row.ID).
		Order("display_order ASC, id ASC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("read projects: %w", err)
	}

	doc := &ProjectsDocument{
		ID:       row.ID,
		Title:    row.Title,
		Subtitle: row.Subtitle,
		Projects: make([]ProjectItem, 0, len(projects)),
	}
	for _, project := range projects {
		var stack []db.ProjectTechStack
		if err := s.db.Where("project_id = ?", project.ID).
			Order("display_order ASC, id ASC").Find(&stack).Error; err != nil {
			return nil, fmt.Errorf("read project tech stack: %w", err)
		}

		item := ProjectItem{
			ID:           project.ID,
			Title:        project.Title,
			Description:  project.Description,
			Image:        project.Image,
			TechStack:    make([]TechStackItem, 0, len(stack)),
			DemoLink:     project.DemoLink,
			GithubLink:   project.GithubLink,
			Featured:     project.Featured,
			DisplayOrder: project.DisplayOrder,
		}
		for _, entry := range stack {
			item.TechStack = append(item.TechStack, TechStackItem{Name: entry.Name, Icon: entry.Icon})
		}
		doc.Projects = append(doc.Projects, item)
	}
	return doc, nil
}

// ReplaceProjects 整体覆盖项目区块。项目按稳定主键更新保持身份；
// 每个项目的技术栈是二级纯顺序子集合，始终以项目主键为锚全删全插。
func (s *SectionService) ReplaceProjects(doc *ProjectsDocument) error {
	if err := requireParent(doc.ID, doc.Title, "projects"); err != nil {
		return err
	}
	for _, project := range doc.Projects {
		if strings.TrimSpace(project.Title) == "" {
			return fmt.Errorf("%w: project requires a title", ErrInvalidDocument)
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		parent := db.ProjectsSection{ID: doc.ID, Title: doc.Title, Subtitle: doc.Subtitle}
		if err := upsertByID(tx, &parent); err != nil {
			return err
		}

		keep := make([]string, 0, len(doc.Projects))
		for i := range doc.Projects {
			item := &doc.Projects[i]
			if strings.TrimSpace(item.ID) == "" {
				item.ID = uuid.NewString()
			}
			item.DisplayOrder = i

			row := db.Project{
				ID:           item.ID,
				SectionID:    doc.ID,
				Title:        item.Title,
				Description:  item.Description,
				Image:        item.Image,
				DemoLink:     item.DemoLink,
				GithubLink:   item.GithubLink,
				Featured:     item.Featured,
				DisplayOrder: i,
			}
			if err := upsertByID(tx, &row); err != nil {
				return err
			}
			keep = append(keep, item.ID)

			if err := tx.Where("project_id = ?", item.ID).Delete(&db.ProjectTechStack{}).Error; err != nil {
				return err
			}
			if len(item.TechStack) > 0 {
				rows := make([]db.ProjectTechStack, 0, len(item.TechStack))
				for j, entry := range item.TechStack {
					rows = append(rows, db.ProjectTechStack{
						ProjectID:    item.ID,
						Name:         entry.Name,
						Icon:         entry.Icon,
						DisplayOrder: j,
					})
				}
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}

		// 被移除的项目连同其技术栈一并清理，不依赖驱动层的级联行为
		var stale []db.Project
		staleQuery := tx.Where("section_id = ?", doc.ID)
		if len(keep) > 0 {
			staleQuery = staleQuery.Where("id NOT IN ?", keep)
		}
		if err := staleQuery.Find(&stale).Error; err != nil {
			return err
		}
		for _, old := range stale {
			if err := tx.Where("project_id = ?", old.ID).Delete(&db.ProjectTechStack{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", old.ID).Delete(&db.Project{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace projects section: %w", err)
	}
	return nil
}

// ReadContact 读取联系区块及社交链接
func (s *SectionService) ReadContact() (*ContactDocument, error) {
	var row db.ContactSection
	if err := s.db.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("read contact section: %w", err)
	}

	var socials []db.ContactSocial
	if err := s.db.Where("section_id = ?", row.ID).
		Order("display_order ASC, id ASC").Find(&socials).Error; err != nil {
		return nil, fmt.Errorf("read contact socials: %w", err)
	}

	doc := &ContactDocument{
		ID:       row.ID,
		Title:    row.Title,
		Subtitle: row.Subtitle,
		Email:    row.Email,
		Location: row.Location,
		Socials:  make([]SocialLink, 0, len(socials)),
	}
	for _, social := range socials {
		doc.Socials = append(doc.Socials, SocialLink{Platform: social.Platform, URL: social.URL, Icon: social.Icon})
	}
	return doc, nil
}

// ReplaceContact 整体覆盖联系区块；社交链接为纯顺序子集合，全删全插
func (s *SectionService) ReplaceContact(doc *ContactDocument) error {
	if err := requireParent(doc.ID, doc.Title, "contact"); err != nil {
		return err
	}
	for _, social := range doc.Socials {
		if strings.TrimSpace(social.Platform) == "" || strings.TrimSpace(social.URL) == "" {
			return fmt.Errorf("%w: social link requires platform and url", ErrInvalidDocument)
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		parent := db.ContactSection{
			ID:       doc.ID,
			Title:    doc.Title,
			Subtitle: doc.Subtitle,
			Email:    doc.Email,
			Location: doc.Location,
		}
		if err := upsertByID(tx, &parent); err != nil {
			return err
		}

		if err := tx.Where("section_id = ?", doc.ID).Delete(&db.ContactSocial{}).Error; err != nil {
			return err
		}
		if len(doc.Socials) > 0 {
			rows := make([]db.ContactSocial, 0, len(doc.Socials))
			for i, social := range doc.Socials {
				rows = append(rows, db.ContactSocial{
					SectionID:    doc.ID,
					Platform:     social.Platform,
					URL:          social.URL,
					Icon:         social.Icon,
					DisplayOrder: i,
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace contact section: %w", err)
	}
	return nil
}

func requireParent(id, title, kind string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s document requires an id", ErrInvalidDocument, kind)
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: %s document requires a title", ErrInvalidDocument, kind)
	}
	return nil
}

func upsertByID(tx *gorm.DB, value interface{}) error {
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(value).Error
}
