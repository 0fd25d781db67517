package localstore

import (
	"context"

	"notedesk/internal/entity"
	"notedesk/internal/repository/contract"
	"notedesk/internal/repository/specification"

	"github.com/google/uuid"
)

type TaskRepository struct {
	store *Store
}

func NewTaskRepository(store *Store) contract.TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) Create(ctx context.Context, task *entity.Task) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Tasks = append(s.data.Tasks, taskToRecord(task))
	return s.flush(keyTasks, s.data.Tasks)
}

func (r *TaskRepository) Update(ctx context.Context, task *entity.Task) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.data.Tasks {
		if rec.Id == task.Id {
			s.data.Tasks[i] = taskToRecord(task)
			return s.flush(keyTasks, s.data.Tasks)
		}
	}
	s.data.Tasks = append(s.data.Tasks, taskToRecord(task))
	return s.flush(keyTasks, s.data.Tasks)
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Tasks[:0]
	for _, rec := range s.data.Tasks {
		if rec.Id != id {
			kept = append(kept, rec)
		}
	}
	s.data.Tasks = kept
	return s.flush(keyTasks, s.data.Tasks)
}

func (r *TaskRepository) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Tasks[:0]
	for _, rec := range s.data.Tasks {
		if rec.NoteId != noteId {
			kept = append(kept, rec)
		}
	}
	s.data.Tasks = kept
	return s.flush(keyTasks, s.data.Tasks)
}

func (r *TaskRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.data.Tasks {
		if matches(filterable{id: rec.Id, noteId: rec.NoteId, title: rec.Title}, specs) {
			return taskToEntity(rec), nil
		}
	}
	return nil, nil
}

func (r *TaskRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var tasks []*entity.Task
	for _, rec := range s.data.Tasks {
		if matches(filterable{id: rec.Id, noteId: rec.NoteId, title: rec.Title}, specs) {
			tasks = append(tasks, taskToEntity(rec))
		}
	}
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	tasks, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(tasks)), nil
}
