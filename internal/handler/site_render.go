package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rejoanafridi/my-porfolio-sub000/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

func renderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return sanitizer.Sanitize(buf.String()), nil
}

// GetSectionHTML returns the markdown-bearing sections with their text
// fields rendered to sanitized HTML for the public site. Only the
// about and projects sections carry rendered variants.
func (a *API) GetSectionHTML(c *gin.Context) {
	kind, err := service.ParseSectionKind(c.Param("section"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "unknown section")
		return
	}

	switch kind {
	case service.SectionAbout:
		doc, err := a.sections.ReadAbout()
		if err != nil {
			a.renderReadError(c, err)
			return
		}

		rendered := make([]string, 0, len(doc.Description))
		for _, paragraph := range doc.Description {
			converted, err := renderMarkdown(paragraph)
			if err != nil {
				respondError(c, http.StatusInternalServerError, "failed to render section")
				return
			}
			rendered = append(rendered, converted)
		}
		c.JSON(http.StatusOK, gin.H{
			"id":              doc.ID,
			"title":           doc.Title,
			"subtitle":        doc.Subtitle,
			"image":           doc.Image,
			"descriptionHtml": rendered,
			"traits":          doc.Traits,
		})

	case service.SectionProjects:
		doc, err := a.sections.ReadProjects()
		if err != nil {
			a.renderReadError(c, err)
			return
		}

		projects := make([]gin.H, 0, len(doc.Projects))
		for _, project := range doc.Projects {
			converted, err := renderMarkdown(project.Description)
			if err != nil {
				respondError(c, http.StatusInternalServerError, "failed to render section")
				return
			}
			projects = append(projects, gin.H{
				"id":              project.ID,
				"title":           project.Title,
				"descriptionHtml": converted,
				"image":           project.Image,
				"techStack":       project.TechStack,
				"demoLink":        project.DemoLink,
				"githubLink":      project.GithubLink,
				"featured":        project.Featured,
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"id":       doc.ID,
			"title":    doc.Title,
			"subtitle": doc.Subtitle,
			"projects": projects,
		})

	default:
		respondError(c, http.StatusBadRequest, "section has no rendered variant")
	}
}

func (a *API) renderReadError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrSectionNotFound) {
		respondError(c, http.StatusNotFound, "section not found")
		return
	}
	a.log.Error().Err(err).Msg("section read failed")
	respondError(c, http.StatusInternalServerError, "failed to load section")
}
