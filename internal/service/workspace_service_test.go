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

func createWorkspace(t *testing.T, svc IWorkspaceService) *dto.WorkspaceResponse {
	t.Helper()
	w, err := svc.Create(context.Background(), &dto.CreateWorkspaceRequest{Name: "Personal", Path: "~/notes"})
	assert.NoError(t, err)
	return w
}

func TestWorkspaceCreateHasDefaultProfile(t *testing.T) {
	env := newTestEnv()
	svc := env.workspaceService()

	w := createWorkspace(t, svc)
	assert.Len(t, w.Profiles, 1)
	assert.Equal(t, w.Profiles[0].Id, w.CurrentProfileId)
	assert.Equal(t, "Default", w.Profiles[0].Name)
	assert.Equal(t, "single", w.Profiles[0].Settings.DefaultView)
	assert.False(t, w.Profiles[0].Theme.IsDarkMode)
}

func TestWorkspaceLastProfileCannotBeRemoved(t *testing.T) {
	env := newTestEnv()
	svc := env.workspaceService()
	ctx := context.Background()

	w := createWorkspace(t, svc)
	got, err := svc.RemoveProfile(ctx, w.Id, w.Profiles[0].Id)
	assert.NoError(t, err)
	assert.Len(t, got.Profiles, 1)
}

func TestWorkspaceRemoveCurrentProfileReassigns(t *testing.T) {
	env := newTestEnv()
	svc := env.workspaceService()
	ctx := context.Background()

	w := createWorkspace(t, svc)
	w, err := svc.AddProfile(ctx, &dto.AddProfileRequest{WorkspaceId: w.Id, Name: "Focus"})
	assert.NoError(t, err)
	assert.Len(t, w.Profiles, 2)

	current := w.CurrentProfileId
	got, err := svc.RemoveProfile(ctx, w.Id, current)
	assert.NoError(t, err)
	assert.Len(t, got.Profiles, 1)
	assert.NotEqual(t, current, got.CurrentProfileId)
	assert.Equal(t, got.Profiles[0].Id, got.CurrentProfileId)
}

func TestWorkspaceDuplicateProfileCopiesThemeAndSettings(t *testing.T) {
	env := newTestEnv()
	svc := env.workspaceService()
	ctx := context.Background()

	w := createWorkspace(t, svc)
	theme := w.Profiles[0].Theme
	theme.IsDarkMode = true
	w, err := svc.UpdateProfileTheme(ctx, &dto.UpdateProfileThemeRequest{
		WorkspaceId: w.Id,
		ProfileId:   w.Profiles[0].Id,
		Theme:       theme,
	})
	assert.NoError(t, err)

	got, err := svc.DuplicateProfile(ctx, &dto.DuplicateProfileRequest{
		WorkspaceId: w.Id,
		ProfileId:   w.Profiles[0].Id,
		Name:        "Default (Copy)",
	})
	assert.NoError(t, err)
	assert.Len(t, got.Profiles, 2)

	copied := got.Profiles[1]
	assert.Equal(t, "Default (Copy)", copied.Name)
	assert.NotEqual(t, got.Profiles[0].Id, copied.Id)
	assert.True(t, copied.Theme.IsDarkMode)
	assert.Equal(t, got.Profiles[0].Settings, copied.Settings)
	assert.Equal(t, got.Profiles[0].Id, got.CurrentProfileId)

	_, err = svc.DuplicateProfile(ctx, &dto.DuplicateProfileRequest{
		WorkspaceId: w.Id,
		ProfileId:   uuid.New(),
		Name:        "Ghost",
	})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestWorkspaceSwitchProfileRejectsForeignProfile(t *testing.T) {
	env := newTestEnv()
	svc := env.workspaceService()
	ctx := context.Background()

	w := createWorkspace(t, svc)
	other := createWorkspace(t, svc)

	_, err := svc.SwitchProfile(ctx, &dto.SwitchProfileRequest{
		WorkspaceId: w.Id,
		ProfileId:   other.Profiles[0].Id,
	})
	assert.True(t, errors.Is(err, apperr.ErrReference))

	_, err = svc.SwitchProfile(ctx, &dto.SwitchProfileRequest{
		WorkspaceId: w.Id,
		ProfileId:   uuid.New(),
	})
	assert.True(t, errors.Is(err, apperr.ErrReference))
}

func TestWorkspaceProfileThemeUpdate(t *testing.T) {
	env := newTestEnv()
	svc := env.workspaceService()
	ctx := context.Background()

	w := createWorkspace(t, svc)
	theme := w.Profiles[0].Theme
	theme.IsDarkMode = true
	theme.BackgroundColor = "#1d2021"

	got, err := svc.UpdateProfileTheme(ctx, &dto.UpdateProfileThemeRequest{
		WorkspaceId: w.Id,
		ProfileId:   w.Profiles[0].Id,
		Theme:       theme,
	})
	assert.NoError(t, err)
	assert.True(t, got.Profiles[0].Theme.IsDarkMode)
	assert.Equal(t, "#1d2021", got.Profiles[0].Theme.BackgroundColor)
}

func TestWorkspaceSelectionClearedOnDelete(t *testing.T) {
	env := newTestEnv()
	svc := env.workspaceService()
	ctx := context.Background()

	w := createWorkspace(t, svc)
	assert.NoError(t, svc.SetCurrent(ctx, "local", w.Id))

	current, err := svc.Current(ctx, "local")
	assert.NoError(t, err)
	assert.NotNil(t, current)

	assert.NoError(t, svc.Delete(ctx, w.Id))

	current, err = svc.Current(ctx, "local")
	assert.NoError(t, err)
	assert.Nil(t, current)
}
