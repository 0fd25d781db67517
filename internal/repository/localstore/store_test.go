package localstore

import (
	"context"
	"testing"
	"time"

	"notedesk/internal/entity"
	"notedesk/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := Open(dir)
	assert.NoError(t, err)

	project := &entity.Project{
		Id:        uuid.New(),
		Name:      "Ideas",
		Color:     "#458588",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, NewProjectRepository(store).Create(ctx, project))

	note := &entity.Note{
		Id:        uuid.New(),
		Title:     "Welcome",
		Content:   "# Hi",
		ProjectId: project.Id,
		CreatedAt: time.Now(),
	}
	assert.NoError(t, NewNoteRepository(store).Create(ctx, note))

	tag := &entity.Tag{Id: uuid.New(), Name: "urgent", Color: "#cc241d", CreatedAt: time.Now()}
	assert.NoError(t, NewTagRepository(store).Create(ctx, tag))
	assert.NoError(t, NewNoteTagRepository(store).AddTagToNote(ctx, note.Id, tag.Id))

	due := time.Now().Add(24 * time.Hour)
	task := &entity.Task{
		Id:        uuid.New(),
		Title:     "Review",
		DueDate:   &due,
		NoteId:    note.Id,
		CreatedAt: time.Now(),
	}
	assert.NoError(t, NewTaskRepository(store).Create(ctx, task))

	profile := &entity.WorkspaceProfile{
		Id:   uuid.New(),
		Name: "Default",
		Theme: entity.ProfileTheme{
			BackgroundColor: "#ffffff",
			AccentColor:     "#2196f3",
			FontFamily:      "Roboto",
			FontSize:        14,
		},
		Settings: entity.EditorSettings{
			DefaultView: "single",
			SplitRatio:  0.5,
			FontFamily:  "monospace",
			TabSize:     2,
			LineHeight:  1.5,
		},
	}
	workspace := &entity.Workspace{
		Id:               uuid.New(),
		Name:             "Personal",
		Path:             "~/notes",
		CurrentProfileId: profile.Id,
		Profiles:         []*entity.WorkspaceProfile{profile},
	}
	assert.NoError(t, NewWorkspaceRepository(store).Create(ctx, workspace))

	tab := &entity.Tab{
		Id:          uuid.New(),
		WorkspaceId: workspace.Id,
		Title:       "Scratch",
		Type:        "note",
		Position:    1,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	assert.NoError(t, NewTabRepository(store).Create(ctx, tab))

	backup := &entity.Backup{
		Id:          uuid.New(),
		WorkspaceId: workspace.Id,
		Data:        `{"notes":[]}`,
		CreatedAt:   time.Now(),
	}
	assert.NoError(t, NewBackupRepository(store).Create(ctx, backup))

	// Reopen from disk and confirm every collection survived.
	reopened, err := Open(dir)
	assert.NoError(t, err)

	gotProject, err := NewProjectRepository(reopened).FindOne(ctx, specification.ByID{ID: project.Id})
	assert.NoError(t, err)
	assert.NotNil(t, gotProject)
	assert.Equal(t, "Ideas", gotProject.Name)

	gotNotes, err := NewNoteRepository(reopened).FindAll(ctx, specification.ByProjectID{ProjectID: project.Id})
	assert.NoError(t, err)
	assert.Len(t, gotNotes, 1)
	assert.Equal(t, "Welcome", gotNotes[0].Title)

	gotTag, err := NewTagRepository(reopened).FindOne(ctx, specification.ByID{ID: tag.Id})
	assert.NoError(t, err)
	assert.NotNil(t, gotTag)
	assert.Equal(t, "urgent", gotTag.Name)
	assert.Equal(t, "#cc241d", gotTag.Color)
	assert.True(t, tag.CreatedAt.Equal(gotTag.CreatedAt))

	gotTagIds, err := NewNoteTagRepository(reopened).GetTagIds(ctx, note.Id)
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{tag.Id}, gotTagIds)

	gotTask, err := NewTaskRepository(reopened).FindOne(ctx, specification.ByID{ID: task.Id})
	assert.NoError(t, err)
	assert.NotNil(t, gotTask)
	assert.Equal(t, "Review", gotTask.Title)
	assert.NotNil(t, gotTask.DueDate)
	assert.True(t, due.Equal(*gotTask.DueDate))

	gotWorkspace, err := NewWorkspaceRepository(reopened).FindOne(ctx, specification.ByID{ID: workspace.Id})
	assert.NoError(t, err)
	assert.Equal(t, workspace, gotWorkspace)

	gotTabs, err := NewTabRepository(reopened).FindAll(ctx, specification.ByWorkspaceID{WorkspaceID: workspace.Id})
	assert.NoError(t, err)
	assert.Len(t, gotTabs, 1)
	assert.Equal(t, "Scratch", gotTabs[0].Title)
	assert.True(t, gotTabs[0].IsActive)

	gotBackups, err := NewBackupRepository(reopened).FindAll(ctx, specification.ByWorkspaceID{WorkspaceID: workspace.Id})
	assert.NoError(t, err)
	assert.Len(t, gotBackups, 1)
	assert.Equal(t, `{"notes":[]}`, gotBackups[0].Data)
}

func TestStoreUpdateIsUpsert(t *testing.T) {
	ctx := context.Background()
	store := OpenEphemeral()
	repo := NewTagRepository(store)

	tag := &entity.Tag{Id: uuid.New(), Name: "urgent", Color: "#cc241d", CreatedAt: time.Now()}
	assert.NoError(t, repo.Create(ctx, tag))

	tag.Name = "very-urgent"
	assert.NoError(t, repo.Update(ctx, tag))

	count, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := repo.FindOne(ctx, specification.ByID{ID: tag.Id})
	assert.NoError(t, err)
	assert.Equal(t, "very-urgent", got.Name)
}

func TestStoreRollbackRestoresSnapshot(t *testing.T) {
	ctx := context.Background()
	store := OpenEphemeral()
	projects := NewProjectRepository(store)
	notes := NewNoteRepository(store)

	project := &entity.Project{Id: uuid.New(), Name: "Work", CreatedAt: time.Now()}
	assert.NoError(t, projects.Create(ctx, project))
	note := &entity.Note{Id: uuid.New(), Title: "Plan", ProjectId: project.Id, CreatedAt: time.Now()}
	assert.NoError(t, notes.Create(ctx, note))

	assert.NoError(t, store.BeginTx())
	assert.NoError(t, notes.Delete(ctx, note.Id))
	assert.NoError(t, projects.Delete(ctx, project.Id))
	assert.NoError(t, store.RollbackTx())

	gotProject, err := projects.FindOne(ctx, specification.ByID{ID: project.Id})
	assert.NoError(t, err)
	assert.NotNil(t, gotProject)

	gotNote, err := notes.FindOne(ctx, specification.ByID{ID: note.Id})
	assert.NoError(t, err)
	assert.NotNil(t, gotNote)
}

func TestNoteTagAttachIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := OpenEphemeral()
	joins := NewNoteTagRepository(store)

	noteId := uuid.New()
	tagId := uuid.New()

	assert.NoError(t, joins.AddTagToNote(ctx, noteId, tagId))
	assert.NoError(t, joins.AddTagToNote(ctx, noteId, tagId))

	ids, err := joins.GetTagIds(ctx, noteId)
	assert.NoError(t, err)
	assert.Len(t, ids, 1)

	assert.NoError(t, joins.RemoveTagFromNote(ctx, noteId, tagId))
	ids, err = joins.GetTagIds(ctx, noteId)
	assert.NoError(t, err)
	assert.Empty(t, ids)
}
