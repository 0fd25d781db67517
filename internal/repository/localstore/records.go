package localstore

import (
	"time"

	"notedesk/internal/entity"

	"github.com/google/uuid"
)

// Record shapes mirror the persisted JSON of the desktop app's local
// storage: flat rows with snake_case keys, joins and tasks as their own
// collections.

type projectRecord struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type noteRecord struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ProjectId uuid.UUID  `json:"project_id"`
	IsPinned  bool       `json:"is_pinned"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type tagRecord struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

type taskRecord struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	NoteId    uuid.UUID  `json:"note_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type noteTagRecord struct {
	NoteId uuid.UUID `json:"note_id"`
	TagId  uuid.UUID `json:"tag_id"`
}

type tabRecord struct {
	Id          uuid.UUID `json:"id"`
	WorkspaceId uuid.UUID `json:"workspace_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Type        string    `json:"type"`
	Position    int       `json:"position"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type backupRecord struct {
	Id          uuid.UUID `json:"id"`
	WorkspaceId uuid.UUID `json:"workspace_id"`
	Data        string    `json:"data"`
	CreatedAt   time.Time `json:"created_at"`
}

type workspaceRecord struct {
	Id               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Path             string           `json:"path"`
	CurrentProfileId uuid.UUID        `json:"current_profile_id"`
	Profiles         []profileRecord  `json:"profiles"`
}

type profileRecord struct {
	Id       uuid.UUID             `json:"id"`
	Name     string                `json:"name"`
	Theme    entity.ProfileTheme   `json:"theme"`
	Settings entity.EditorSettings `json:"settings"`
}

func projectToEntity(r projectRecord) *entity.Project {
	return &entity.Project{
		Id:          r.Id,
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func projectToRecord(p *entity.Project) projectRecord {
	return projectRecord{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func noteToEntity(r noteRecord) *entity.Note {
	return &entity.Note{
		Id:        r.Id,
		Title:     r.Title,
		Content:   r.Content,
		ProjectId: r.ProjectId,
		IsPinned:  r.IsPinned,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func noteToRecord(n *entity.Note) noteRecord {
	return noteRecord{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		ProjectId: n.ProjectId,
		IsPinned:  n.IsPinned,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func tagToEntity(r tagRecord) *entity.Tag {
	return &entity.Tag{
		Id:        r.Id,
		Name:      r.Name,
		Color:     r.Color,
		CreatedAt: r.CreatedAt,
	}
}

func tagToRecord(t *entity.Tag) tagRecord {
	return tagRecord{
		Id:        t.Id,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
	}
}

func taskToEntity(r taskRecord) *entity.Task {
	return &entity.Task{
		Id:        r.Id,
		Title:     r.Title,
		Completed: r.Completed,
		DueDate:   r.DueDate,
		NoteId:    r.NoteId,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func taskToRecord(t *entity.Task) taskRecord {
	return taskRecord{
		Id:        t.Id,
		Title:     t.Title,
		Completed: t.Completed,
		DueDate:   t.DueDate,
		NoteId:    t.NoteId,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func tabToEntity(r tabRecord) *entity.Tab {
	return &entity.Tab{
		Id:          r.Id,
		WorkspaceId: r.WorkspaceId,
		Title:       r.Title,
		Content:     r.Content,
		Type:        r.Type,
		Position:    r.Position,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
	}
}

func tabToRecord(t *entity.Tab) tabRecord {
	return tabRecord{
		Id:          t.Id,
		WorkspaceId: t.WorkspaceId,
		Title:       t.Title,
		Content:     t.Content,
		Type:        t.Type,
		Position:    t.Position,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
}

func backupToEntity(r backupRecord) *entity.Backup {
	return &entity.Backup{
		Id:          r.Id,
		WorkspaceId: r.WorkspaceId,
		Data:        r.Data,
		CreatedAt:   r.CreatedAt,
	}
}

func backupToRecord(b *entity.Backup) backupRecord {
	return backupRecord{
		Id:          b.Id,
		WorkspaceId: b.WorkspaceId,
		Data:        b.Data,
		CreatedAt:   b.CreatedAt,
	}
}

func workspaceToEntity(r workspaceRecord) *entity.Workspace {
	profiles := make([]*entity.WorkspaceProfile, len(r.Profiles))
	for i, p := range r.Profiles {
		profiles[i] = &entity.WorkspaceProfile{
			Id:       p.Id,
			Name:     p.Name,
			Theme:    p.Theme,
			Settings: p.Settings,
		}
	}
	return &entity.Workspace{
		Id:               r.Id,
		Name:             r.Name,
		Path:             r.Path,
		CurrentProfileId: r.CurrentProfileId,
		Profiles:         profiles,
	}
}

func workspaceToRecord(w *entity.Workspace) workspaceRecord {
	profiles := make([]profileRecord, len(w.Profiles))
	for i, p := range w.Profiles {
		profiles[i] = profileRecord{
			Id:       p.Id,
			Name:     p.Name,
			Theme:    p.Theme,
			Settings: p.Settings,
		}
	}
	return workspaceRecord{
		Id:               w.Id,
		Name:             w.Name,
		Path:             w.Path,
		CurrentProfileId: w.CurrentProfileId,
		Profiles:         profiles,
	}
}
