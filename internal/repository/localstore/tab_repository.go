package localstore

import (
	"context"

	"notedesk/internal/entity"
	"notedesk/internal/repository/contract"
	"notedesk/internal/repository/specification"

	"github.com/google/uuid"
)

type TabRepository struct {
	store *Store
}

func NewTabRepository(store *Store) contract.TabRepository {
	return &TabRepository{store: store}
}

func (r *TabRepository) Create(ctx context.Context, tab *entity.Tab) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Tabs = append(s.data.Tabs, tabToRecord(tab))
	return s.flush(keyTabs, s.data.Tabs)
}

func (r *TabRepository) Update(ctx context.Context, tab *entity.Tab) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.data.Tabs {
		if rec.Id == tab.Id {
			s.data.Tabs[i] = tabToRecord(tab)
			return s.flush(keyTabs, s.data.Tabs)
		}
	}
	s.data.Tabs = append(s.data.Tabs, tabToRecord(tab))
	return s.flush(keyTabs, s.data.Tabs)
}

func (r *TabRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Tabs[:0]
	for _, rec := range s.data.Tabs {
		if rec.Id != id {
			kept = append(kept, rec)
		}
	}
	s.data.Tabs = kept
	return s.flush(keyTabs, s.data.Tabs)
}

func (r *TabRepository) DeleteByWorkspaceId(ctx context.Context, workspaceId uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Tabs[:0]
	for _, rec := range s.data.Tabs {
		if rec.WorkspaceId != workspaceId {
			kept = append(kept, rec)
		}
	}
	s.data.Tabs = kept
	return s.flush(keyTabs, s.data.Tabs)
}

func (r *TabRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tab, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.data.Tabs {
		if matches(filterable{id: rec.Id, workspaceId: rec.WorkspaceId, title: rec.Title}, specs) {
			return tabToEntity(rec), nil
		}
	}
	return nil, nil
}

func (r *TabRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tab, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var tabs []*entity.Tab
	for _, rec := range s.data.Tabs {
		if matches(filterable{id: rec.Id, workspaceId: rec.WorkspaceId, title: rec.Title}, specs) {
			tabs = append(tabs, tabToEntity(rec))
		}
	}
	return tabs, nil
}
