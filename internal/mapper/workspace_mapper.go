package mapper

import (
	"encoding/json"

	"notedesk/internal/entity"
	"notedesk/internal/model"

	"github.com/google/uuid"
)

// profileRecord is the JSON shape of a profile inside the workspace row.
type profileRecord struct {
	Id       uuid.UUID             `json:"id"`
	Name     string                `json:"name"`
	Theme    entity.ProfileTheme   `json:"theme"`
	Settings entity.EditorSettings `json:"settings"`
}

type WorkspaceMapper struct{}

func NewWorkspaceMapper() *WorkspaceMapper {
	return &WorkspaceMapper{}
}

func (m *WorkspaceMapper) ToEntity(w *model.Workspace) (*entity.Workspace, error) {
	if w == nil {
		return nil, nil
	}

	var records []profileRecord
	if len(w.Profiles) > 0 {
		if err := json.Unmarshal(w.Profiles, &records); err != nil {
			return nil, err
		}
	}

	profiles := make([]*entity.WorkspaceProfile, len(records))
	for i, r := range records {
		profiles[i] = &entity.WorkspaceProfile{
			Id:       r.Id,
			Name:     r.Name,
			Theme:    r.Theme,
			Settings: r.Settings,
		}
	}

	return &entity.Workspace{
		Id:               w.Id,
		Name:             w.Name,
		Path:             w.Path,
		CurrentProfileId: w.CurrentProfileId,
		Profiles:         profiles,
	}, nil
}

func (m *WorkspaceMapper) ToModel(w *entity.Workspace) (*model.Workspace, error) {
	if w == nil {
		return nil, nil
	}

	records := make([]profileRecord, len(w.Profiles))
	for i, p := range w.Profiles {
		records[i] = profileRecord{
			Id:       p.Id,
			Name:     p.Name,
			Theme:    p.Theme,
			Settings: p.Settings,
		}
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}

	return &model.Workspace{
		Id:               w.Id,
		Name:             w.Name,
		Path:             w.Path,
		CurrentProfileId: w.CurrentProfileId,
		Profiles:         raw,
	}, nil
}

func (m *WorkspaceMapper) ToEntities(workspaces []*model.Workspace) ([]*entity.Workspace, error) {
	entities := make([]*entity.Workspace, len(workspaces))
	for i, w := range workspaces {
		e, err := m.ToEntity(w)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
