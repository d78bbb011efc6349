package service

// SectionKind identifies one of the five fixed content sections.
type SectionKind string

const (
	SectionHero     SectionKind = "hero"
	SectionAbout    SectionKind = "about"
	SectionSkills   SectionKind = "skills"
	SectionProjects SectionKind = "projects"
	SectionContact  SectionKind = "contact"
)

// SectionKinds lists every section in composite-document order.
var SectionKinds = []SectionKind{
	SectionHero,
	SectionAbout,
	SectionSkills,
	SectionProjects,
	SectionContact,
}

// HeroDocument is the public shape of the hero section.
type HeroDocument struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Name             string `json:"name"`
	Subtitle         string `json:"subtitle"`
	Description      string `json:"description"`
	CtaText          string `json:"ctaText"`
	SecondaryCtaText string `json:"secondaryCtaText"`
	ResumeButtonText string `json:"resumeButtonText"`
	ResumeLink       string `json:"resumeLink"`
}

// TraitItem is one entry of the about section's trait list.
type TraitItem struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// AboutDocument is the public shape of the about section.
// Description holds the ordered body paragraphs.
type AboutDocument struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	Image       string      `json:"image"`
	Description []string    `json:"description"`
	Traits      []TraitItem `json:"traits"`
}

// SkillItem carries a stable id so drag-reorder edits keep identity.
type SkillItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// SkillsDocument is the public shape of the skills section.
type SkillsDocument struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Skills   []SkillItem `json:"skills"`
}

// TechStackItem is one entry of a project's tech stack.
type TechStackItem struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// ProjectItem carries a stable id; its tech stack is pure-order.
type ProjectItem struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	TechStack    []TechStackItem `json:"techStack"`
	DemoLink     string          `json:"demoLink"`
	GithubLink   string          `json:"githubLink"`
	Featured     bool            `json:"featured"`
	DisplayOrder int             `json:"display_order,omitempty"`
}

// ProjectsDocument is the public shape of the projects section.
type ProjectsDocument struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Projects []ProjectItem `json:"projects"`
}

// SocialLink is one entry of the contact section's social list.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// ContactDocument is the public shape of the contact section.
type ContactDocument struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Email    string       `json:"email"`
	Location string       `json:"location"`
	Socials  []SocialLink `json:"socials"`
}

// SiteDocument is the composite of all five sections, the unit the
// snapshot store mirrors and the composite endpoints exchange.
type SiteDocument struct {
	Hero     *HeroDocument     `json:"hero"`
	About    *AboutDocument    `json:"about"`
	Skills   *SkillsDocument   `json:"skills"`
	Projects *ProjectsDocument `json:"projects"`
	Contact  *ContactDocument  `json:"contact"`
}

// SiteConfigDocument is the flat site metadata singleton.
type SiteConfigDocument struct {
	ID            string `json:"id"`
	SiteName      string `json:"siteName"`
	Description   string `json:"description"`
	SiteURL       string `json:"siteUrl"`
	LogoURL       string `json:"logoUrl"`
	FaviconURL    string `json:"faviconUrl"`
	MetaImageURL  string `json:"metaImageUrl"`
	FooterText    string `json:"footerText"`
	CopyrightText string `json:"copyrightText"`
}

// DefaultSiteDocument returns a fresh copy of the seed content.
// Callers may mutate the result freely; no shared state is handed out.
func DefaultSiteDocument() SiteDocument {
	return SiteDocument{
		Hero: &HeroDocument{
			ID:               "hero",
			Title:            "Hi, I'm",
			Name:             "Your Name",
			Subtitle:         "Full Stack Developer",
			Description:      "I build clean, reliable web applications from database to browser.",
			CtaText:          "View My Work",
			SecondaryCtaText: "Contact Me",
			ResumeButtonText: "Download Resume",
			ResumeLink:       "/resume.pdf",
		},
		About: &AboutDocument{
			ID:       "about",
			Title:    "About Me",
			Subtitle: "Get to know me",
			Image:    "/images/profile.jpg",
			Description: []string{
				"I'm a developer who enjoys turning rough ideas into working software.",
				"Away from the keyboard I read, hike and tinker with hardware.",
			},
			Traits: []TraitItem{
				{Icon: "Code", Text: "Clean Code"},
				{Icon: "Zap", Text: "Fast Learner"},
				{Icon: "Users", Text: "Team Player"},
			},
		},
		Skills: &SkillsDocument{
			ID:       "skills",
			Title:    "Skills",
			Subtitle: "What I work with",
			Skills: []SkillItem{
				{ID: "skill-go", Name: "Go", Icon: "Terminal", Color: "#00ADD8"},
				{ID: "skill-react", Name: "React", Icon: "Atom", Color: "#61DAFB"},
				{ID: "skill-sql", Name: "SQL", Icon: "Database", Color: "#336791"},
			},
		},
		Projects: &ProjectsDocument{
			ID:       "projects",
			Title:    "Projects",
			Subtitle: "Things I've built",
			Projects: []ProjectItem{
				{
					ID:          "project-portfolio",
					Title:       "Portfolio Site",
					Description: "This site: a themeable single-page portfolio with an admin panel.",
					Image:       "/images/projects/portfolio.png",
					TechStack: []TechStackItem{
						{Name: "Go", Icon: "Terminal"},
						{Name: "SQLite", Icon: "Database"},
					},
					DemoLink:   "https://example.com",
					GithubLink: "https://github.com/example/portfolio",
					Featured:   true,
				},
			},
		},
		Contact: &ContactDocument{
			ID:       "contact",
			Title:    "Get In Touch",
			Subtitle: "Let's work together",
			Email:    "hello@example.com",
			Location: "Remote",
			Socials: []SocialLink{
				{Platform: "GitHub", URL: "https://github.com/example", Icon: "Github"},
				{Platform: "LinkedIn", URL: "https://linkedin.com/in/example", Icon: "Linkedin"},
			},
		},
	}
}

// DefaultSiteConfig returns a fresh copy of the site metadata defaults.
func DefaultSiteConfig() SiteConfigDocument {
	return SiteConfigDocument{
		ID:            "site",
		SiteName:      "My Portfolio",
		Description:   "Personal portfolio and project showcase.",
		SiteURL:       "https://example.com",
		FooterText:    "Built with care.",
		CopyrightText: "© Your Name",
	}
}
