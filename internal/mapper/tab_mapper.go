package mapper

import (
	"notedesk/internal/entity"
	"notedesk/internal/model"
)

type TabMapper struct{}

func NewTabMapper() *TabMapper {
	return &TabMapper{}
}

func (m *TabMapper) ToEntity(t *model.Tab) *entity.Tab {
	if t == nil {
		return nil
	}

	return &entity.Tab{
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

func (m *TabMapper) ToModel(t *entity.Tab) *model.Tab {
	if t == nil {
		return nil
	}

	return &model.Tab{
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

func (m *TabMapper) ToEntities(tabs []*model.Tab) []*entity.Tab {
	entities := make([]*entity.Tab, len(tabs))
	for i, t := range tabs {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
