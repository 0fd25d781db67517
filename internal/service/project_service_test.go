package service

import (
	"context"
	"errors"
	"testing"

	"notedesk/internal/apperr"
	"notedesk/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProjectColorsCycle(t *testing.T) {
	env := newTestEnv()
	svc := env.projectService()
	ctx := context.Background()

	var colors []string
	for i := 0; i < len(projectColors)+1; i++ {
		p, err := svc.Create(ctx, &dto.CreateProjectRequest{Name: "p"})
		assert.NoError(t, err)
		colors = append(colors, p.Color)
	}

	for i, c := range colors {
		assert.Equal(t, projectColors[i%len(projectColors)], c)
	}
	// The ninth project wraps back to the first palette entry.
	assert.Equal(t, colors[0], colors[len(projectColors)])
}

func TestProjectUpdateNotFound(t *testing.T) {
	env := newTestEnv()
	svc := env.projectService()

	_, err := svc.Update(context.Background(), &dto.UpdateProjectRequest{Id: uuid.New(), Name: "x"})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestProjectDeleteCascadesNotes(t *testing.T) {
	env := newTestEnv()
	projects := env.projectService()
	notes := env.noteService(t.TempDir())
	ctx := context.Background()

	p, err := projects.Create(ctx, &dto.CreateProjectRequest{Name: "Work"})
	assert.NoError(t, err)
	created, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "Plan", ProjectId: p.Id})
	assert.NoError(t, err)

	assert.NoError(t, projects.Delete(ctx, p.Id))

	_, err = notes.Show(ctx, created.Id)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	all, err := notes.List(ctx, nil)
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestProjectSelectionClearedOnDelete(t *testing.T) {
	env := newTestEnv()
	svc := env.projectService()
	ctx := context.Background()

	p, err := svc.Create(ctx, &dto.CreateProjectRequest{Name: "Work"})
	assert.NoError(t, err)
	assert.NoError(t, svc.SetCurrent(ctx, "local", p.Id))

	current, err := svc.Current(ctx, "local")
	assert.NoError(t, err)
	assert.NotNil(t, current)
	assert.Equal(t, p.Id, current.Id)

	assert.NoError(t, svc.Delete(ctx, p.Id))

	current, err = svc.Current(ctx, "local")
	assert.NoError(t, err)
	assert.Nil(t, current)
}

func TestProjectCurrentReflectsRename(t *testing.T) {
	env := newTestEnv()
	svc := env.projectService()
	ctx := context.Background()

	p, err := svc.Create(ctx, &dto.CreateProjectRequest{Name: "Old"})
	assert.NoError(t, err)
	assert.NoError(t, svc.SetCurrent(ctx, "local", p.Id))

	_, err = svc.Update(ctx, &dto.UpdateProjectRequest{Id: p.Id, Name: "New"})
	assert.NoError(t, err)

	current, err := svc.Current(ctx, "local")
	assert.NoError(t, err)
	assert.Equal(t, "New", current.Name)
}
