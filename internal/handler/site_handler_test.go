package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rejoanafridi/my-porfolio-sub000/internal/db"
	"github.com/rejoanafridi/my-porfolio-sub000/internal/service"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openHandlerTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func newTestAPI(t *testing.T, gdb *gorm.DB, seeded bool) *API {
	t.Helper()

	sections := service.NewSectionService(gdb)
	snapshot := service.NewSnapshotStore(filepath.Join(t.TempDir(), "snapshot.json"))
	site := service.NewSiteService(gdb, sections, snapshot, zerolog.Nop())
	if seeded {
		if err := site.Bootstrap(); err != nil {
			t.Fatalf("bootstrap failed: %v", err)
		}
		if err := site.SeedIfEmpty(); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		site.MarkServing()
	}

	return &API{
		db:         gdb,
		site:       site,
		sections:   sections,
		siteConfig: service.NewSiteConfigService(gdb),
		media:      service.NewLocalMediaStore(t.TempDir(), "/static/uploads"),
		log:        zerolog.Nop(),
	}
}

func sectionRequest(t *testing.T, method, section string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "section", Value: section}}

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, "/api/site/"+section, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestGetSectionReturnsSeededHero(t *testing.T) {
	gdb, cleanup := openHandlerTestDB(t)
	defer cleanup()
	api := newTestAPI(t, gdb, true)

	c, w := sectionRequest(t, http.MethodGet, "hero", nil)
	api.GetSection(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var doc service.HeroDocument
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if doc.ID != "hero" || doc.Title == "" {
		t.Fatalf("unexpected hero document: %#v", doc)
	}
}

func TestGetSectionUnknownKind(t *testing.T) {
	gdb, cleanup := openHandlerTestDB(t)
	defer cleanup()
	api := newTestAPI(t, gdb, true)

	c, w := sectionRequest(t, http.MethodGet, "gallery", nil)
	api.GetSection(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestGetSectionNotFoundBeforeSeed(t *testing.T) {
	gdb, cleanup := openHandlerTestDB(t)
	defer cleanup()
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	api := newTestAPI(t, gdb, false)

	c, w := sectionRequest(t, http.MethodGet, "about", nil)
	api.GetSection(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestUpdateSectionReplacesChildren(t *testing.T) {
	gdb, cleanup := openHandlerTestDB(t)
	defer cleanup()
	api := newTestAPI(t, gdb, true)

	doc := service.AboutDocument{
		ID:          "about",
		Title:       "About",
		Description: []string{"only paragraph"},
		Traits:      []service.TraitItem{{Icon: "Zap", Text: "Quick"}},
	}
	c, w := sectionRequest(t, http.MethodPut, "about", doc)
	api.UpdateSection(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	gdb.Model(&db.AboutParagraph{}).Where("section_id = ?", "about").Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 paragraph row after replace, found %d", count)
	}
}

func TestUpdateSectionRejectsInvalidDocument(t *testing.T) {
	gdb, cleanup := openHandlerTestDB(t)
	defer cleanup()
	api := newTestAPI(t, gdb, true)

	c, w := sectionRequest(t, http.MethodPut, "about", service.AboutDocument{Title: "no id"})
	api.UpdateSection(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestGetSiteAlwaysReturnsDocument(t *testing.T) {
	gdb, cleanup := openHandlerTestDB(t)
	defer cleanup()
	// No schema, no seed: the degraded path must still answer.
	api := newTestAPI(t, gdb, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/site", nil)
	api.GetSite(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var doc service.SiteDocument
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if doc.Hero == nil || doc.Contact == nil {
		t.Fatalf("expected a complete fallback document: %#v", doc)
	}
}

func TestGetSectionHTMLRendersMarkdown(t *testing.T) {
	gdb, cleanup := openHandlerTestDB(t)
	defer cleanup()
	api := newTestAPI(t, gdb, true)

	doc := service.AboutDocument{
		ID:          "about",
		Title:       "About",
		Description: []string{"I write **bold** plans."},
	}
	if err := api.sections.ReplaceAbout(&doc); err != nil {
		t.Fatalf("replace about failed: %v", err)
	}

	c, w := sectionRequest(t, http.MethodGet, "about", nil)
	api.GetSectionHTML(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var rendered struct {
		DescriptionHTML []string `json:"descriptionHtml"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &rendered); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(rendered.DescriptionHTML) != 1 || !strings.Contains(rendered.DescriptionHTML[0], "<strong>bold</strong>") {
		t.Fatalf("expected rendered markdown, got %#v", rendered.DescriptionHTML)
	}
}

func TestGetSectionHTMLSanitizesMarkup(t *testing.T) {
	gdb, cleanup := openHandlerTestDB(t)
	defer cleanup()
	api := newTestAPI(t, gdb, true)

	doc := service.AboutDocument{
		ID:          "about",
		Title:       "About",
		Description: []string{"hello <script>alert(1)</script>"},
	}
	if err := api.sections.ReplaceAbout(&doc); err != nil {
		t.Fatalf("replace about failed: %v", err)
	}

	c, w := sectionRequest(t, http.MethodGet, "about", nil)
	api.GetSectionHTML(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var rendered struct {
		DescriptionHTML []string `json:"descriptionHtml"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &rendered); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(rendered.DescriptionHTML) != 1 || strings.Contains(rendered.DescriptionHTML[0], "<script>") {
		t.Fatalf("expected script tags to be stripped, got %#v", rendered.DescriptionHTML)
	}
}
