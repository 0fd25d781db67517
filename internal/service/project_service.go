package service

import (
	"context"
	"fmt"
	"time"

	"notedesk/internal/apperr"
	"notedesk/internal/dto"
	"notedesk/internal/entity"
	"notedesk/internal/repository/memory"
	"notedesk/internal/repository/specification"
	"notedesk/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// projectColors is the fixed palette assigned to new projects, cycling
// by the number of existing projects at creation time.
var projectColors = []string{
	"#458588", "#98971a", "#d79921", "#cc241d",
	"#b16286", "#689d6a", "#a89984", "#d65d0e",
}

type IProjectService interface {
	Create(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error)
	List(ctx context.Context) ([]*dto.ProjectResponse, error)
	Update(ctx context.Context, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetCurrent(ctx context.Context, sessionID string, id uuid.UUID) error
	Current(ctx context.Context, sessionID string) (*dto.ProjectResponse, error)
}

type projectService struct {
	uowFactory unitofwork.RepositoryFactory
	selections *memory.SelectionRepository
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory, selections *memory.SelectionRepository) IProjectService {
	return &projectService{
		uowFactory: uowFactory,
		selections: selections,
	}
}

func (s *projectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	name, err := requiredText("name", req.Name)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.ProjectRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	project := entity.Project{
		Id:          uuid.New(),
		Name:        name,
		Description: req.Description,
		Color:       projectColors[count%int64(len(projectColors))],
		CreatedAt:   time.Now(),
	}

	if err := uow.ProjectRepository().Create(ctx, &project); err != nil {
		return nil, err
	}

	return projectToResponse(&project), nil
}

func (s *projectService) Show(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %s", apperr.ErrNotFound, id)
	}
	return projectToResponse(project), nil
}

func (s *projectService) List(ctx context.Context) ([]*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	projects, err := uow.ProjectRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		res = append(res, projectToResponse(p))
	}
	return res, nil
}

func (s *projectService) Update(ctx context.Context, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	name, err := requiredText("name", req.Name)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %s", apperr.ErrNotFound, req.Id)
	}

	now := time.Now()
	project.Name = name
	project.Description = req.Description
	if req.Color != "" {
		project.Color = req.Color
	}
	project.UpdatedAt = &now

	if err := uow.ProjectRepository().Update(ctx, project); err != nil {
		return nil, err
	}
	return projectToResponse(project), nil
}

// Delete removes the project and everything under it: its notes, their
// tasks and their tag attachments. The cascade runs in one transaction
// so a mid-way failure leaves the store untouched.
func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if project == nil {
		return fmt.Errorf("%w: project %s", apperr.ErrNotFound, id)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	notes, err := uow.NoteRepository().FindAll(ctx, specification.ByProjectID{ProjectID: id})
	if err != nil {
		uow.Rollback()
		return err
	}

	for _, note := range notes {
		if err := uow.TaskRepository().DeleteByNoteId(ctx, note.Id); err != nil {
			uow.Rollback()
			return err
		}
		if err := uow.NoteTagRepository().DeleteByNoteId(ctx, note.Id); err != nil {
			uow.Rollback()
			return err
		}
		if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
			uow.Rollback()
			return err
		}
	}

	if err := uow.ProjectRepository().Delete(ctx, id); err != nil {
		uow.Rollback()
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.selections.ClearProject(id)
	for _, note := range notes {
		s.selections.ClearNote(note.Id)
	}
	return nil
}

func (s *projectService) SetCurrent(ctx context.Context, sessionID string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if project == nil {
		return fmt.Errorf("%w: project %s", apperr.ErrNotFound, id)
	}

	sel, found := s.selections.Get(sessionID)
	if !found {
		sel = &memory.Selection{SessionID: sessionID}
	}
	sel.ProjectID = &project.Id
	// Selecting a different project drops the note selection; the note
	// belongs to the previous project.
	if sel.NoteID != nil {
		note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: *sel.NoteID})
		if err != nil {
			return err
		}
		if note == nil || note.ProjectId != project.Id {
			sel.NoteID = nil
		}
	}
	s.selections.Save(sel)
	return nil
}

// Current resolves the session's selected project by id on every call,
// so a rename or delete since selection is always reflected.
func (s *projectService) Current(ctx context.Context, sessionID string) (*dto.ProjectResponse, error) {
	sel, found := s.selections.Get(sessionID)
	if !found || sel.ProjectID == nil {
		return nil, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: *sel.ProjectID})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}
	return projectToResponse(project), nil
}

func projectToResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
