package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrSnapshotNotFound 在快照文件尚不存在时返回
var ErrSnapshotNotFound = errors.New("site snapshot not found")

// SnapshotStore mirrors the composite site document to a flat JSON file.
// It is the degraded read path when the relational store is unavailable;
// writes are best-effort, not a durability guarantee.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore 构造 SnapshotStore，path 为空时回退到默认文件名。
func NewSnapshotStore(path string) *SnapshotStore {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = "site_snapshot.json"
	}
	return &SnapshotStore{path: trimmed}
}

// Path returns the snapshot file location.
func (st *SnapshotStore) Path() string {
	return st.path
}

// Load reads and decodes the snapshot, reporting ErrSnapshotNotFound
// when no file has been written yet.
func (st *SnapshotStore) Load() (*SiteDocument, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("load site snapshot: %w", err)
	}

	var doc SiteDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode site snapshot: %w", err)
	}
	return &doc, nil
}

// Save serializes the composite document over the snapshot file.
func (st *SnapshotStore) Save(doc *SiteDocument) error {
	dir := filepath.Dir(st.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save site snapshot: %w", err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode site snapshot: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		return fmt.Errorf("save site snapshot: %w", err)
	}
	return nil
}
