package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rejoanafridi/my-porfolio-sub000/internal/db"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// CoordinatorState tracks the one-directional startup progression of
// the site coordinator. Transitions run once per process; only a
// restart returns to StateUninitialized.
type CoordinatorState string

const (
	StateUninitialized   CoordinatorState = "UNINITIALIZED"
	StateSchemaChecked   CoordinatorState = "SCHEMA_CHECKED"
	StateSeededOrSkipped CoordinatorState = "SEEDED_OR_SKIPPED"
	StateServing         CoordinatorState = "SERVING"
)

// SiteService coordinates the relational primary and the snapshot
// fallback: it bootstraps the schema, seeds default content, serves
// composite reads with degradation, and mirrors writes to the snapshot.
type SiteService struct {
	db       *gorm.DB
	sections *SectionService
	snapshot *SnapshotStore
	log      zerolog.Logger

	mu    sync.Mutex
	state CoordinatorState
}

// NewSiteService 构造 SiteService
func NewSiteService(gdb *gorm.DB, sections *SectionService, snapshot *SnapshotStore, log zerolog.Logger) *SiteService {
	return &SiteService{
		db:       gdb,
		sections: sections,
		snapshot: snapshot,
		log:      log,
		state:    StateUninitialized,
	}
}

// State returns the coordinator's current lifecycle state.
func (s *SiteService) State() CoordinatorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Bootstrap checks the marker table and creates the fixed table set
// when absent. Safe to invoke on every process start.
func (s *SiteService) Bootstrap() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateUninitialized {
		return nil
	}

	if !s.db.Migrator().HasTable(&db.HeroSection{}) {
		s.log.Info().Msg("content schema missing, creating table set")
		if err := db.Migrate(s.db); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	s.state = StateSchemaChecked
	return nil
}

// SeedIfEmpty inserts the full default document when the primary
// section table is empty. A partial seed leaves a non-zero count and
// is therefore skipped on the next start, never retried automatically.
func (s *SiteService) SeedIfEmpty() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateUninitialized {
		return errors.New("seed requires a checked schema")
	}
	if s.state != StateSchemaChecked {
		return nil
	}

	var count int64
	if err := s.db.Model(&db.HeroSection{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed check: %w", err)
	}

	if count == 0 {
		doc := DefaultSiteDocument()
		if err := s.replaceAll(&doc); err != nil {
			return fmt.Errorf("seed default content: %w", err)
		}
		s.log.Info().Msg("seeded default site content")
	}

	s.state = StateSeededOrSkipped
	return nil
}

// MarkServing completes the startup progression.
func (s *SiteService) MarkServing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSeededOrSkipped {
		s.state = StateServing
	}
}

// GetSiteData assembles the composite document. On any relational
// failure or missing section it degrades to the snapshot, then to the
// default content; it never surfaces a store error to the caller.
func (s *SiteService) GetSiteData() *SiteDocument {
	doc, err := s.readAll()
	if err == nil {
		return doc
	}
	s.log.Warn().Err(err).Msg("relational read failed, falling back to snapshot")

	snap, snapErr := s.snapshot.Load()
	if snapErr == nil {
		return snap
	}
	if !errors.Is(snapErr, ErrSnapshotNotFound) {
		s.log.Warn().Err(snapErr).Msg("snapshot unreadable, serving default content")
	}

	def := DefaultSiteDocument()
	if saveErr := s.snapshot.Save(&def); saveErr != nil {
		s.log.Warn().Err(saveErr).Msg("failed to persist default snapshot")
	}
	return &def
}

// ReplaceSiteData replaces all five sections from one composite
// document and refreshes the snapshot mirror.
func (s *SiteService) ReplaceSiteData(doc *SiteDocument) (*SiteDocument, error) {
	if doc == nil || doc.Hero == nil || doc.About == nil || doc.Skills == nil || doc.Projects == nil || doc.Contact == nil {
		return nil, fmt.Errorf("%w: composite document requires all five sections", ErrInvalidDocument)
	}

	if err := s.replaceAll(doc); err != nil {
		return nil, err
	}
	s.RefreshSnapshot()
	return doc, nil
}

// RefreshSnapshot mirrors the current relational state to the snapshot
// file. Best effort: failures are logged, not propagated.
func (s *SiteService) RefreshSnapshot() {
	doc, err := s.readAll()
	if err != nil {
		s.log.Debug().Err(err).Msg("skipping snapshot refresh, relational read incomplete")
		return
	}
	if err := s.snapshot.Save(doc); err != nil {
		s.log.Warn().Err(err).Msg("failed to refresh site snapshot")
	}
}

func (s *SiteService) readAll() (*SiteDocument, error) {
	hero, err := s.sections.ReadHero()
	if err != nil {
		return nil, err
	}
	about, err := s.sections.ReadAbout()
	if err != nil {
		return nil, err
	}
	skills, err := s.sections.ReadSkills()
	if err != nil {
		return nil, err
	}
	projects, err := s.sections.ReadProjects()
	if err != nil {
		return nil, err
	}
	contact, err := s.sections.ReadContact()
	if err != nil {
		return nil, err
	}

	return &SiteDocument{
		Hero:     hero,
		About:    about,
		Skills:   skills,
		Projects: projects,
		Contact:  contact,
	}, nil
}

func (s *SiteService) replaceAll(doc *SiteDocument) error {
	if err := s.sections.ReplaceHero(doc.Hero); err != nil {
		return err
	}
	if err := s.sections.ReplaceAbout(doc.About); err != nil {
		return err
	}
	if err := s.sections.ReplaceSkills(doc.Skills); err != nil {
		return err
	}
	if err := s.sections.ReplaceProjects(doc.Projects); err != nil {
		return err
	}
	return s.sections.ReplaceContact(doc.Contact)
}
