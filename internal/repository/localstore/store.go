// Package localstore is the local-storage variant of the persistence
// layer: every collection is kept in memory and mirrored to a JSON file
// under a fixed key in the data directory, whole collection per write.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"notedesk/internal/apperr"
)

const (
	keyProjects   = "projects"
	keyNotes      = "notes"
	keyTags       = "tags"
	keyTasks      = "tasks"
	keyNoteTags   = "note_tags"
	keyWorkspaces = "workspaces"
	keyTabs       = "tabs"
	keyBackups    = "backups"
)

type collections struct {
	Projects   []projectRecord
	Notes      []noteRecord
	Tags       []tagRecord
	Tasks      []taskRecord
	NoteTags   []noteTagRecord
	Workspaces []workspaceRecord
	Tabs       []tabRecord
	Backups    []backupRecord
}

type Store struct {
	mu        sync.Mutex
	dir       string
	ephemeral bool

	data collections

	txMu   sync.Mutex
	inTx   bool
	txSnap collections
}

// Open initializes the store in dir, creating it if needed and loading any
// existing collections. Fails with apperr.ErrStorageUnavailable when the
// directory cannot be created or an existing collection cannot be read.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir %s: %v", apperr.ErrStorageUnavailable, dir, err)
	}

	s := &Store{dir: dir}
	for key, target := range map[string]interface{}{
		keyProjects:   &s.data.Projects,
		keyNotes:      &s.data.Notes,
		keyTags:       &s.data.Tags,
		keyTasks:      &s.data.Tasks,
		keyNoteTags:   &s.data.NoteTags,
		keyWorkspaces: &s.data.Workspaces,
		keyTabs:       &s.data.Tabs,
		keyBackups:    &s.data.Backups,
	} {
		if err := s.load(key, target); err != nil {
			return nil, fmt.Errorf("%w: load %s: %v", apperr.ErrStorageUnavailable, key, err)
		}
	}
	return s, nil
}

// OpenEphemeral returns a store that never touches disk. Used as the
// degraded empty-state fallback and in tests.
func OpenEphemeral() *Store {
	return &Store{ephemeral: true}
}

func (s *Store) load(key string, target interface{}) error {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(raw, target)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// flush rewrites one collection file atomically (temp file + rename).
func (s *Store) flush(key string, v interface{}) error {
	if s.ephemeral {
		return nil
	}

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *Store) flushAll() error {
	for key, v := range map[string]interface{}{
		keyProjects:   s.data.Projects,
		keyNotes:      s.data.Notes,
		keyTags:       s.data.Tags,
		keyTasks:      s.data.Tasks,
		keyNoteTags:   s.data.NoteTags,
		keyWorkspaces: s.data.Workspaces,
		keyTabs:       s.data.Tabs,
		keyBackups:    s.data.Backups,
	} {
		if err := s.flush(key, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) snapshot() collections {
	return collections{
		Projects:   append([]projectRecord(nil), s.data.Projects...),
		Notes:      append([]noteRecord(nil), s.data.Notes...),
		Tags:       append([]tagRecord(nil), s.data.Tags...),
		Tasks:      append([]taskRecord(nil), s.data.Tasks...),
		NoteTags:   append([]noteTagRecord(nil), s.data.NoteTags...),
		Workspaces: append([]workspaceRecord(nil), s.data.Workspaces...),
		Tabs:       append([]tabRecord(nil), s.data.Tabs...),
		Backups:    append([]backupRecord(nil), s.data.Backups...),
	}
}

// BeginTx serializes transactions and snapshots all collections so a
// multi-step mutation (cascade delete) can be rolled back as a unit.
func (s *Store) BeginTx() error {
	s.txMu.Lock()
	s.mu.Lock()
	s.txSnap = s.snapshot()
	s.inTx = true
	s.mu.Unlock()
	return nil
}

func (s *Store) CommitTx() error {
	s.mu.Lock()
	if !s.inTx {
		s.mu.Unlock()
		return fmt.Errorf("no transaction to commit")
	}
	s.inTx = false
	s.txSnap = collections{}
	s.mu.Unlock()
	s.txMu.Unlock()
	return nil
}

func (s *Store) RollbackTx() error {
	s.mu.Lock()
	if !s.inTx {
		s.mu.Unlock()
		return fmt.Errorf("no transaction to rollback")
	}
	s.data = s.txSnap
	s.inTx = false
	s.txSnap = collections{}
	err := s.flushAll()
	s.mu.Unlock()
	s.txMu.Unlock()
	return err
}
