package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Selection holds the ids of the caller's current workspace, project and
// note. Only ids are kept; the entities are re-read on access so a stale
// copy can never shadow a concurrent edit.
type Selection struct {
	SessionID   string
	WorkspaceID *uuid.UUID
	ProjectID   *uuid.UUID
	NoteID      *uuid.UUID
}

type SelectionRepository struct {
	cache *cache.Cache
}

func NewSelectionRepository() *SelectionRepository {
	// Selections never expire on their own; they are cleared when the
	// selected entity is deleted.
	c := cache.New(cache.NoExpiration, 10*time.Minute)
	return &SelectionRepository{
		cache: c,
	}
}

func (r *SelectionRepository) Save(selection *Selection) {
	r.cache.Set(selection.SessionID, selection, cache.DefaultExpiration)
}

func (r *SelectionRepository) Get(sessionID string) (*Selection, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*Selection), true
	}
	return nil, false
}

func (r *SelectionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// ClearProject drops the project (and its dependent note) from every
// session that had it selected. Called when the project is deleted.
func (r *SelectionRepository) ClearProject(projectID uuid.UUID) {
	for _, item := range r.cache.Items() {
		sel, ok := item.Object.(*Selection)
		if !ok || sel.ProjectID == nil || *sel.ProjectID != projectID {
			continue
		}
		sel.ProjectID = nil
		sel.NoteID = nil
		r.cache.Set(sel.SessionID, sel, cache.DefaultExpiration)
	}
}

// ClearNote drops the note from every session that had it selected.
func (r *SelectionRepository) ClearNote(noteID uuid.UUID) {
	for _, item := range r.cache.Items() {
		sel, ok := item.Object.(*Selection)
		if !ok || sel.NoteID == nil || *sel.NoteID != noteID {
			continue
		}
		sel.NoteID = nil
		r.cache.Set(sel.SessionID, sel, cache.DefaultExpiration)
	}
}

// ClearWorkspace drops the workspace from every session that had it
// selected.
func (r *SelectionRepository) ClearWorkspace(workspaceID uuid.UUID) {
	for _, item := range r.cache.Items() {
		sel, ok := item.Object.(*Selection)
		if !ok || sel.WorkspaceID == nil || *sel.WorkspaceID != workspaceID {
			continue
		}
		sel.WorkspaceID = nil
		r.cache.Set(sel.SessionID, sel, cache.DefaultExpiration)
	}
}
