package service

import (
	"context"
	"fmt"
	"time"

	"notedesk/internal/apperr"
	"notedesk/internal/dto"
	"notedesk/internal/entity"
	"notedesk/internal/repository/specification"
	"notedesk/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITaskService interface {
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	Update(ctx context.Context, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByNote(ctx context.Context, noteId uuid.UUID) ([]*dto.TaskResponse, error)
}

type taskService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTaskService(uowFactory unitofwork.RepositoryFactory) ITaskService {
	return &taskService{
		uowFactory: uowFactory,
	}
}

func (s *taskService) Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	title, err := requiredText("title", req.Title)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.NoteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%w: note %s", apperr.ErrNotFound, req.NoteId)
	}

	task := entity.Task{
		Id:        uuid.New(),
		Title:     title,
		DueDate:   req.DueDate,
		NoteId:    req.NoteId,
		CreatedAt: time.Now(),
	}

	if err := uow.TaskRepository().Create(ctx, &task); err != nil {
		return nil, err
	}
	return taskToResponse(&task), nil
}

func (s *taskService) Update(ctx context.Context, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	title, err := requiredText("title", req.Title)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := uow.TaskRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("%w: task %s", apperr.ErrNotFound, req.Id)
	}

	now := time.Now()
	task.Title = title
	task.Completed = req.Completed
	task.DueDate = req.DueDate
	task.UpdatedAt = &now

	if err := uow.TaskRepository().Update(ctx, task); err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

func (s *taskService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := uow.TaskRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("%w: task %s", apperr.ErrNotFound, id)
	}
	return uow.TaskRepository().Delete(ctx, id)
}

func (s *taskService) ListByNote(ctx context.Context, noteId uuid.UUID) ([]*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tasks, err := uow.TaskRepository().FindAll(ctx, specification.ByNoteID{NoteID: noteId})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, taskToResponse(t))
	}
	return res, nil
}

func taskToResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		Id:        t.Id,
		Title:     t.Title,
		Completed: t.Completed,
		DueDate:   t.DueDate,
		NoteId:    t.NoteId,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
