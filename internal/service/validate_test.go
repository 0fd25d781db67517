package service

import (
	"context"
	"errors"
	"testing"

	"notedesk/internal/apperr"
	"notedesk/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateRejectsBlankRequiredFields(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	projects := env.projectService()
	notes := env.noteService(t.TempDir())
	tags := env.tagService()
	tasks := env.taskService()
	workspaces := env.workspaceService()

	p, err := projects.Create(ctx, &dto.CreateProjectRequest{Name: "Work"})
	assert.NoError(t, err)
	n, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "Plan", ProjectId: p.Id})
	assert.NoError(t, err)

	cases := []struct {
		name string
		run  func() error
	}{
		{"project create", func() error {
			_, err := projects.Create(ctx, &dto.CreateProjectRequest{Name: "   "})
			return err
		}},
		{"project update", func() error {
			_, err := projects.Update(ctx, &dto.UpdateProjectRequest{Id: p.Id, Name: "\t\n"})
			return err
		}},
		{"note create", func() error {
			_, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: " ", ProjectId: p.Id})
			return err
		}},
		{"note title update", func() error {
			return notes.UpdateTitle(ctx, &dto.UpdateNoteTitleRequest{Id: n.Id, Title: "   "})
		}},
		{"tag create", func() error {
			_, err := tags.Create(ctx, &dto.CreateTagRequest{Name: "   "})
			return err
		}},
		{"task create", func() error {
			_, err := tasks.Create(ctx, &dto.CreateTaskRequest{Title: "   ", NoteId: n.Id})
			return err
		}},
		{"workspace create", func() error {
			_, err := workspaces.Create(ctx, &dto.CreateWorkspaceRequest{Name: "   ", Path: "~/x"})
			return err
		}},
	}

	for _, tc := range cases {
		assert.True(t, errors.Is(tc.run(), apperr.ErrValidation), tc.name)
	}

	// Nothing blank ever reached the store.
	all, err := projects.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	allTags, err := tags.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, allTags)
}

func TestCreateTrimsRequiredFields(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	projects := env.projectService()
	p, err := projects.Create(ctx, &dto.CreateProjectRequest{Name: "  Work  "})
	assert.NoError(t, err)
	assert.Equal(t, "Work", p.Name)

	tags := env.tagService()
	tag, err := tags.Create(ctx, &dto.CreateTagRequest{Name: " urgent "})
	assert.NoError(t, err)
	assert.Equal(t, "urgent", tag.Name)
}
