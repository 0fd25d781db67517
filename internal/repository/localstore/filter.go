package localstore

import (
	"notedesk/internal/repository/specification"

	"github.com/google/uuid"
)

// The localstore backend interprets the shared specification types
// directly instead of building SQL. Ordering specs are ignored: records
// are kept in insertion order, which is the collection's natural order.

type filterable struct {
	id          uuid.UUID
	projectId   uuid.UUID
	noteId      uuid.UUID
	workspaceId uuid.UUID
	title       string
}

func matches(f filterable, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if f.id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if f.id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.ByProjectID:
			if f.projectId != s.ProjectID {
				return false
			}
		case specification.ByNoteID:
			if f.noteId != s.NoteID {
				return false
			}
		case specification.ByWorkspaceID:
			if f.workspaceId != s.WorkspaceID {
				return false
			}
		case specification.ByTitle:
			if f.title != s.Title {
				return false
			}
		case specification.OrderBy:
			// insertion order is authoritative here
		}
	}
	return true
}
