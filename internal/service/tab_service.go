package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"notedesk/internal/apperr"
	"notedesk/internal/dto"
	"notedesk/internal/entity"
	"notedesk/internal/repository/specification"
	"notedesk/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITabService interface {
	Create(ctx context.Context, req *dto.CreateTabRequest) (*dto.TabResponse, error)
	ListByWorkspace(ctx context.Context, workspaceId uuid.UUID) ([]*dto.TabResponse, error)
	SetActive(ctx context.Context, req *dto.SetTabActiveRequest) (*dto.TabResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tabService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTabService(uowFactory unitofwork.RepositoryFactory) ITabService {
	return &tabService{
		uowFactory: uowFactory,
	}
}

func (s *tabService) Create(ctx context.Context, req *dto.CreateTabRequest) (*dto.TabResponse, error) {
	title, err := requiredText("title", req.Title)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := uow.WorkspaceRepository().FindOne(ctx, specification.ByID{ID: req.WorkspaceId})
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		return nil, fmt.Errorf("%w: workspace %s", apperr.ErrNotFound, req.WorkspaceId)
	}

	tabType := req.Type
	if tabType == "" {
		tabType = "note"
	}

	position := 0
	if req.Position != nil {
		position = *req.Position
	} else {
		existing, err := uow.TabRepository().FindAll(ctx, specification.ByWorkspaceID{WorkspaceID: req.WorkspaceId})
		if err != nil {
			return nil, err
		}
		for _, t := range existing {
			if t.Position >= position {
				position = t.Position + 1
			}
		}
	}

	tab := entity.Tab{
		Id:          uuid.New(),
		WorkspaceId: req.WorkspaceId,
		Title:       title,
		Content:     req.Content,
		Type:        tabType,
		Position:    position,
		IsActive:    req.IsActive,
		CreatedAt:   time.Now(),
	}

	if err := uow.TabRepository().Create(ctx, &tab); err != nil {
		return nil, err
	}
	return tabToResponse(&tab), nil
}

// ListByWorkspace returns the workspace's tabs in position order.
func (s *tabService) ListByWorkspace(ctx context.Context, workspaceId uuid.UUID) ([]*dto.TabResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tabs, err := uow.TabRepository().FindAll(ctx, specification.ByWorkspaceID{WorkspaceID: workspaceId})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tabs, func(i, j int) bool {
		return tabs[i].Position < tabs[j].Position
	})

	res := make([]*dto.TabResponse, 0, len(tabs))
	for _, t := range tabs {
		res = append(res, tabToResponse(t))
	}
	return res, nil
}

func (s *tabService) SetActive(ctx context.Context, req *dto.SetTabActiveRequest) (*dto.TabResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tab, err := uow.TabRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if tab == nil {
		return nil, fmt.Errorf("%w: tab %s", apperr.ErrNotFound, req.Id)
	}

	tab.IsActive = req.IsActive
	if err := uow.TabRepository().Update(ctx, tab); err != nil {
		return nil, err
	}
	return tabToResponse(tab), nil
}

func (s *tabService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tab, err := uow.TabRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if tab == nil {
		return fmt.Errorf("%w: tab %s", apperr.ErrNotFound, id)
	}
	return uow.TabRepository().Delete(ctx, id)
}

func tabToResponse(t *entity.Tab) *dto.TabResponse {
	return &dto.TabResponse{
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
