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

type ITagService interface {
	Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	List(ctx context.Context) ([]*dto.TagResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTagService(uowFactory unitofwork.RepositoryFactory) ITagService {
	return &tagService{
		uowFactory: uowFactory,
	}
}

func (s *tagService) Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	name, err := requiredText("name", req.Name)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag := entity.Tag{
		Id:        uuid.New(),
		Name:      name,
		Color:     req.Color,
		CreatedAt: time.Now(),
	}

	if err := uow.TagRepository().Create(ctx, &tag); err != nil {
		return nil, err
	}

	return &dto.TagResponse{
		Id:        tag.Id,
		Name:      tag.Name,
		Color:     tag.Color,
		CreatedAt: tag.CreatedAt,
	}, nil
}

func (s *tagService) List(ctx context.Context) ([]*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tags, err := uow.TagRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		res = append(res, &dto.TagResponse{
			Id:        t.Id,
			Name:      t.Name,
			Color:     t.Color,
			CreatedAt: t.CreatedAt,
		})
	}
	return res, nil
}

// Delete removes the tag and detaches it from every note in one
// transaction. Notes themselves are untouched.
func (s *tagService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if tag == nil {
		return fmt.Errorf("%w: tag %s", apperr.ErrNotFound, id)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.NoteTagRepository().DeleteByTagId(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.TagRepository().Delete(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	return uow.Commit()
}
