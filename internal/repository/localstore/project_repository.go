package localstore

import (
	"context"

	"notedesk/internal/entity"
	"notedesk/internal/repository/contract"
	"notedesk/internal/repository/specification"

	"github.com/google/uuid"
)

type ProjectRepository struct {
	store *Store
}

func NewProjectRepository(store *Store) contract.ProjectRepository {
	return &ProjectRepository{store: store}
}

func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Projects = append(s.data.Projects, projectToRecord(project))
	return s.flush(keyProjects, s.data.Projects)
}

func (r *ProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.data.Projects {
		if rec.Id == project.Id {
			s.data.Projects[i] = projectToRecord(project)
			return s.flush(keyProjects, s.data.Projects)
		}
	}
	s.data.Projects = append(s.data.Projects, projectToRecord(project))
	return s.flush(keyProjects, s.data.Projects)
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Projects[:0]
	for _, rec := range s.data.Projects {
		if rec.Id != id {
			kept = append(kept, rec)
		}
	}
	s.data.Projects = kept
	return s.flush(keyProjects, s.data.Projects)
}

func (r *ProjectRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Project, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.data.Projects {
		if matches(filterable{id: rec.Id, title: rec.Name}, specs) {
			return projectToEntity(rec), nil
		}
	}
	return nil, nil
}

func (r *ProjectRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Project, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var projects []*entity.Project
	for _, rec := range s.data.Projects {
		if matches(filterable{id: rec.Id, title: rec.Name}, specs) {
			projects = append(projects, projectToEntity(rec))
		}
	}
	return projects, nil
}

func (r *ProjectRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	projects, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(projects)), nil
}
