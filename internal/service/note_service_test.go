package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"notedesk/internal/apperr"
	"notedesk/internal/dto"
	"notedesk/pkg/render"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func setupProject(t *testing.T, env *testEnv) uuid.UUID {
	t.Helper()
	p, err := env.projectService().Create(context.Background(), &dto.CreateProjectRequest{Name: "Inbox"})
	assert.NoError(t, err)
	return p.Id
}

func TestNoteCreateRequiresProject(t *testing.T) {
	env := newTestEnv()
	svc := env.noteService(t.TempDir())

	_, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Title: "x", ProjectId: uuid.New()})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestNoteUpdateContentTouchesOnlyContent(t *testing.T) {
	env := newTestEnv()
	svc := env.noteService(t.TempDir())
	ctx := context.Background()
	projectId := setupProject(t, env)

	created, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "Keep me", Content: "old", ProjectId: projectId})
	assert.NoError(t, err)

	assert.NoError(t, svc.UpdateContent(ctx, &dto.UpdateNoteContentRequest{Id: created.Id, Content: "new"}))

	got, err := svc.Show(ctx, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Keep me", got.Title)
	assert.Equal(t, "new", got.Content)
	assert.NotNil(t, got.UpdatedAt)
}

func TestNoteSearchSemantics(t *testing.T) {
	env := newTestEnv()
	svc := env.noteService(t.TempDir())
	ctx := context.Background()
	projectId := setupProject(t, env)

	_, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "Hello World", Content: "greetings", ProjectId: projectId})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, &dto.CreateNoteRequest{Title: "Shopping", Content: "hello milk", ProjectId: projectId})
	assert.NoError(t, err)

	// Every term must match somewhere in title+content.
	res, err := svc.Search(ctx, "hello world")
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "Hello World", res[0].Title)

	// A single term matches across both notes, case-insensitively.
	res, err = svc.Search(ctx, "HELLO")
	assert.NoError(t, err)
	assert.Len(t, res, 2)

	// Blank queries match nothing.
	res, err = svc.Search(ctx, "   ")
	assert.NoError(t, err)
	assert.Empty(t, res)
}

func TestNoteAddTagIdempotentAndChecked(t *testing.T) {
	env := newTestEnv()
	notes := env.noteService(t.TempDir())
	tags := env.tagService()
	ctx := context.Background()
	projectId := setupProject(t, env)

	note, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "n", ProjectId: projectId})
	assert.NoError(t, err)
	tag, err := tags.Create(ctx, &dto.CreateTagRequest{Name: "urgent", Color: "#cc241d"})
	assert.NoError(t, err)

	err = notes.AddTag(ctx, &dto.AttachTagRequest{NoteId: note.Id, TagId: uuid.New()})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	assert.NoError(t, notes.AddTag(ctx, &dto.AttachTagRequest{NoteId: note.Id, TagId: tag.Id}))
	assert.NoError(t, notes.AddTag(ctx, &dto.AttachTagRequest{NoteId: note.Id, TagId: tag.Id}))

	got, err := notes.Show(ctx, note.Id)
	assert.NoError(t, err)
	assert.Len(t, got.Tags, 1)
	assert.Equal(t, "urgent", got.Tags[0].Name)
}

func TestNoteDeleteCascadesTasksAndSelection(t *testing.T) {
	env := newTestEnv()
	notes := env.noteService(t.TempDir())
	tasks := env.taskService()
	ctx := context.Background()
	projectId := setupProject(t, env)

	note, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "n", ProjectId: projectId})
	assert.NoError(t, err)
	_, err = tasks.Create(ctx, &dto.CreateTaskRequest{Title: "todo", NoteId: note.Id})
	assert.NoError(t, err)
	assert.NoError(t, notes.SetCurrent(ctx, "local", note.Id))

	assert.NoError(t, notes.Delete(ctx, note.Id))

	current, err := notes.Current(ctx, "local")
	assert.NoError(t, err)
	assert.Nil(t, current)

	remaining, err := tasks.ListByNote(ctx, note.Id)
	assert.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestNoteExportRequiresPreview(t *testing.T) {
	env := newTestEnv()
	svc := env.noteService(t.TempDir())
	ctx := context.Background()
	projectId := setupProject(t, env)

	note, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "Report", Content: "# R", ProjectId: projectId})
	assert.NoError(t, err)

	_, err = svc.Export(ctx, note.Id)
	assert.True(t, errors.Is(err, apperr.ErrRenderPrecondition))

	env.previews.Put(&render.Preview{
		NoteID:     note.Id,
		HTML:       "<h1>R</h1>",
		Width:      600,
		Height:     800,
		RenderedAt: time.Now(),
	})

	res, err := svc.Export(ctx, note.Id)
	assert.NoError(t, err)
	assert.Contains(t, res.Path, "Report.pdf")
}

func TestNoteMoveRequiresTargetProject(t *testing.T) {
	env := newTestEnv()
	svc := env.noteService(t.TempDir())
	ctx := context.Background()
	projectId := setupProject(t, env)

	note, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "n", ProjectId: projectId})
	assert.NoError(t, err)

	err = svc.Move(ctx, &dto.MoveNoteRequest{Id: note.Id, ProjectId: uuid.New()})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	other, err := env.projectService().Create(ctx, &dto.CreateProjectRequest{Name: "Other"})
	assert.NoError(t, err)
	assert.NoError(t, svc.Move(ctx, &dto.MoveNoteRequest{Id: note.Id, ProjectId: other.Id}))

	got, err := svc.Show(ctx, note.Id)
	assert.NoError(t, err)
	assert.Equal(t, other.Id, got.ProjectId)
}
