package dto

import (
	"github.com/google/uuid"

	"notedesk/internal/entity"
)

type CreateWorkspaceRequest struct {
	Name string `json:"name" validate:"required"`
	Path string `json:"path" validate:"required"`
}

type RenameWorkspaceRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required"`
}

type WorkspaceResponse struct {
	Id               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Path             string            `json:"path"`
	CurrentProfileId uuid.UUID         `json:"current_profile_id"`
	Profiles         []ProfileResponse `json:"profiles"`
}

type ProfileResponse struct {
	Id       uuid.UUID             `json:"id"`
	Name     string                `json:"name"`
	Theme    entity.ProfileTheme   `json:"theme"`
	Settings entity.EditorSettings `json:"settings"`
}

type SetCurrentWorkspaceRequest struct {
	Id uuid.UUID `json:"id" validate:"required"`
}

type AddProfileRequest struct {
	WorkspaceId uuid.UUID
	Name        string `json:"name" validate:"required"`
}

type RenameProfileRequest struct {
	WorkspaceId uuid.UUID
	ProfileId   uuid.UUID
	Name        string `json:"name" validate:"required"`
}

type DuplicateProfileRequest struct {
	WorkspaceId uuid.UUID
	ProfileId   uuid.UUID
	Name        string `json:"name" validate:"required"`
}

type SwitchProfileRequest struct {
	WorkspaceId uuid.UUID
	ProfileId   uuid.UUID `json:"profile_id" validate:"required"`
}

type UpdateProfileThemeRequest struct {
	WorkspaceId uuid.UUID
	ProfileId   uuid.UUID
	Theme       entity.ProfileTheme `json:"theme"`
}

type UpdateProfileSettingsRequest struct {
	WorkspaceId uuid.UUID
	ProfileId   uuid.UUID
	Settings    entity.EditorSettings `json:"settings"`
}
