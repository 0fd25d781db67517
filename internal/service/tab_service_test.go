package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"notedesk/internal/apperr"
	"notedesk/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestTabCreateRequiresWorkspace(t *testing.T) {
	env := newTestEnv()
	svc := env.tabService()

	_, err := svc.Create(context.Background(), &dto.CreateTabRequest{
		WorkspaceId: uuid.New(),
		Title:       "Scratch",
	})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestTabListOrderedByPosition(t *testing.T) {
	env := newTestEnv()
	tabs := env.tabService()
	ctx := context.Background()

	w := createWorkspace(t, env.workspaceService())

	_, err := tabs.Create(ctx, &dto.CreateTabRequest{WorkspaceId: w.Id, Title: "Second", Position: intPtr(2)})
	assert.NoError(t, err)
	_, err = tabs.Create(ctx, &dto.CreateTabRequest{WorkspaceId: w.Id, Title: "First", Position: intPtr(1)})
	assert.NoError(t, err)
	// No position appends after the highest existing one.
	appended, err := tabs.Create(ctx, &dto.CreateTabRequest{WorkspaceId: w.Id, Title: "Third"})
	assert.NoError(t, err)
	assert.Equal(t, 3, appended.Position)

	got, err := tabs.ListByWorkspace(ctx, w.Id)
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "First", got[0].Title)
	assert.Equal(t, "Second", got[1].Title)
	assert.Equal(t, "Third", got[2].Title)
	assert.Equal(t, "note", got[0].Type)
}

func TestTabSetActiveAndDelete(t *testing.T) {
	env := newTestEnv()
	tabs := env.tabService()
	ctx := context.Background()

	w := createWorkspace(t, env.workspaceService())
	tab, err := tabs.Create(ctx, &dto.CreateTabRequest{WorkspaceId: w.Id, Title: "Notes"})
	assert.NoError(t, err)
	assert.False(t, tab.IsActive)

	got, err := tabs.SetActive(ctx, &dto.SetTabActiveRequest{Id: tab.Id, IsActive: true})
	assert.NoError(t, err)
	assert.True(t, got.IsActive)

	assert.NoError(t, tabs.Delete(ctx, tab.Id))
	assert.True(t, errors.Is(tabs.Delete(ctx, tab.Id), apperr.ErrNotFound))
}

func TestWorkspaceDeleteCascadesTabsAndBackups(t *testing.T) {
	env := newTestEnv()
	workspaces := env.workspaceService()
	tabs := env.tabService()
	ctx := context.Background()

	w := createWorkspace(t, workspaces)
	keep := createWorkspace(t, workspaces)

	_, err := tabs.Create(ctx, &dto.CreateTabRequest{WorkspaceId: w.Id, Title: "Doomed"})
	assert.NoError(t, err)
	_, err = tabs.Create(ctx, &dto.CreateTabRequest{WorkspaceId: keep.Id, Title: "Survivor"})
	assert.NoError(t, err)
	_, err = workspaces.CreateBackup(ctx, &dto.CreateBackupRequest{WorkspaceId: w.Id})
	assert.NoError(t, err)

	assert.NoError(t, workspaces.Delete(ctx, w.Id))

	gone, err := tabs.ListByWorkspace(ctx, w.Id)
	assert.NoError(t, err)
	assert.Empty(t, gone)
	backups, err := workspaces.ListBackups(ctx, w.Id)
	assert.NoError(t, err)
	assert.Empty(t, backups)

	kept, err := tabs.ListByWorkspace(ctx, keep.Id)
	assert.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestWorkspaceBackupSnapshotsByDefault(t *testing.T) {
	env := newTestEnv()
	workspaces := env.workspaceService()
	ctx := context.Background()

	w := createWorkspace(t, workspaces)

	b, err := workspaces.CreateBackup(ctx, &dto.CreateBackupRequest{WorkspaceId: w.Id})
	assert.NoError(t, err)
	assert.Equal(t, w.Id, b.WorkspaceId)

	custom, err := workspaces.CreateBackup(ctx, &dto.CreateBackupRequest{
		WorkspaceId: w.Id,
		Data:        json.RawMessage(`{"notes":[]}`),
	})
	assert.NoError(t, err)
	assert.NotEqual(t, b.Id, custom.Id)

	all, err := workspaces.ListBackups(ctx, w.Id)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}
