package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"notedesk/internal/apperr"
	"notedesk/internal/dto"
	"notedesk/internal/entity"
	"notedesk/internal/pkg/logger"
	"notedesk/internal/repository/memory"
	"notedesk/internal/repository/specification"
	"notedesk/internal/repository/unitofwork"
	"notedesk/pkg/export"
	"notedesk/pkg/render"
	pkgSearch "notedesk/pkg/search"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowNoteResponse, error)
	List(ctx context.Context, projectId *uuid.UUID) ([]*dto.NoteListItemResponse, error)
	UpdateContent(ctx context.Context, req *dto.UpdateNoteContentRequest) error
	UpdateTitle(ctx context.Context, req *dto.UpdateNoteTitleRequest) error
	SetPinned(ctx context.Context, req *dto.SetNotePinnedRequest) error
	Move(ctx context.Context, req *dto.MoveNoteRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetCurrent(ctx context.Context, sessionID string, id uuid.UUID) error
	Current(ctx context.Context, sessionID string) (*dto.ShowNoteResponse, error)
	Search(ctx context.Context, query string) ([]*dto.NoteListItemResponse, error)
	AddTag(ctx context.Context, req *dto.AttachTagRequest) error
	RemoveTag(ctx context.Context, req *dto.AttachTagRequest) error
	Export(ctx context.Context, id uuid.UUID) (*dto.ExportNoteResponse, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	selections       *memory.SelectionRepository
	previews         *render.PreviewCache
	exporter         *export.PDFExporter
	logger           logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	selections *memory.SelectionRepository,
	previews *render.PreviewCache,
	exporter *export.PDFExporter,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		selections:       selections,
		previews:         previews,
		exporter:         exporter,
		logger:           log,
	}
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	title, err := requiredText("title", req.Title)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: req.ProjectId})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %s", apperr.ErrNotFound, req.ProjectId)
	}

	note := entity.Note{
		Id:        uuid.New(),
		Title:     title,
		Content:   req.Content,
		ProjectId: req.ProjectId,
		CreatedAt: time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	s.publishRender(ctx, note.Id)

	return &dto.CreateNoteResponse{Id: note.Id}, nil
}

func (s *noteService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%w: note %s", apperr.ErrNotFound, id)
	}
	return s.hydrate(ctx, uow, note)
}

func (s *noteService) List(ctx context.Context, projectId *uuid.UUID) ([]*dto.NoteListItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	if projectId != nil {
		specs = append(specs, specification.ByProjectID{ProjectID: *projectId})
	}

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteListItemResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, noteToListItem(n))
	}
	return res, nil
}

// UpdateContent touches only the body. Title, pin state and project stay
// as they are; the preview is re-rendered asynchronously.
func (s *noteService) UpdateContent(ctx context.Context, req *dto.UpdateNoteContentRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if note == nil {
		return fmt.Errorf("%w: note %s", apperr.ErrNotFound, req.Id)
	}

	now := time.Now()
	note.Content = req.Content
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return err
	}

	s.previews.Invalidate(note.Id)
	s.publishRender(ctx, note.Id)
	return nil
}

func (s *noteService) UpdateTitle(ctx context.Context, req *dto.UpdateNoteTitleRequest) error {
	title, err := requiredText("title", req.Title)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if note == nil {
		return fmt.Errorf("%w: note %s", apperr.ErrNotFound, req.Id)
	}

	now := time.Now()
	note.Title = title
	note.UpdatedAt = &now
	return uow.NoteRepository().Update(ctx, note)
}

func (s *noteService) SetPinned(ctx context.Context, req *dto.SetNotePinnedRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if note == nil {
		return fmt.Errorf("%w: note %s", apperr.ErrNotFound, req.Id)
	}

	now := time.Now()
	note.IsPinned = req.IsPinned
	note.UpdatedAt = &now
	return uow.NoteRepository().Update(ctx, note)
}

func (s *noteService) Move(ctx context.Context, req *dto.MoveNoteRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if note == nil {
		return fmt.Errorf("%w: note %s", apperr.ErrNotFound, req.Id)
	}

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: req.ProjectId})
	if err != nil {
		return err
	}
	if project == nil {
		return fmt.Errorf("%w: project %s", apperr.ErrNotFound, req.ProjectId)
	}

	now := time.Now()
	note.ProjectId = req.ProjectId
	note.UpdatedAt = &now
	return uow.NoteRepository().Update(ctx, note)
}

// Delete removes the note together with its tasks and tag attachments in
// one transaction, then clears any selection and preview pointing at it.
func (s *noteService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if note == nil {
		return fmt.Errorf("%w: note %s", apperr.ErrNotFound, id)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.TaskRepository().DeleteByNoteId(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.NoteTagRepository().DeleteByNoteId(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.selections.ClearNote(id)
	s.previews.Invalidate(id)
	return nil
}

func (s *noteService) SetCurrent(ctx context.Context, sessionID string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if note == nil {
		return fmt.Errorf("%w: note %s", apperr.ErrNotFound, id)
	}

	sel, found := s.selections.Get(sessionID)
	if !found {
		sel = &memory.Selection{SessionID: sessionID}
	}
	sel.NoteID = &note.Id
	// Selecting a note implies selecting its project.
	sel.ProjectID = &note.ProjectId
	s.selections.Save(sel)
	return nil
}

// Current resolves the session's selected note by id on every call; a
// concurrent edit or delete is always visible.
func (s *noteService) Current(ctx context.Context, sessionID string) (*dto.ShowNoteResponse, error) {
	sel, found := s.selections.Get(sessionID)
	if !found || sel.NoteID == nil {
		return nil, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: *sel.NoteID})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}
	return s.hydrate(ctx, uow, note)
}

// Search returns notes whose title or content contains every query term,
// case-insensitively, preserving store order. A blank query matches
// nothing.
func (s *noteService) Search(ctx context.Context, query string) ([]*dto.NoteListItemResponse, error) {
	q := pkgSearch.ParseQuery(query)
	if q.IsEmpty() {
		return []*dto.NoteListItemResponse{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteListItemResponse, 0)
	for _, n := range notes {
		if q.Match(n.Title + " " + n.Content) {
			res = append(res, noteToListItem(n))
		}
	}
	return res, nil
}

// AddTag attaches a tag to a note. Attaching an already-attached tag is
// a no-op; both sides must exist.
func (s *noteService) AddTag(ctx context.Context, req *dto.AttachTagRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.NoteId})
	if err != nil {
		return err
	}
	if note == nil {
		return fmt.Errorf("%w: note %s", apperr.ErrNotFound, req.NoteId)
	}

	tag, err := uow.TagRepository().FindOne(ctx, specification.ByID{ID: req.TagId})
	if err != nil {
		return err
	}
	if tag == nil {
		return fmt.Errorf("%w: tag %s", apperr.ErrNotFound, req.TagId)
	}

	return uow.NoteTagRepository().AddTagToNote(ctx, req.NoteId, req.TagId)
}

func (s *noteService) RemoveTag(ctx context.Context, req *dto.AttachTagRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.NoteId})
	if err != nil {
		return err
	}
	if note == nil {
		return fmt.Errorf("%w: note %s", apperr.ErrNotFound, req.NoteId)
	}

	return uow.NoteTagRepository().RemoveTagFromNote(ctx, req.NoteId, req.TagId)
}

// Export writes the note's rendered preview to a single-page PDF. The
// preview must exist first; exporting a never-rendered note fails
// without touching the filesystem.
func (s *noteService) Export(ctx context.Context, id uuid.UUID) (*dto.ExportNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%w: note %s", apperr.ErrNotFound, id)
	}

	preview, found := s.previews.Get(id)
	if !found {
		return nil, fmt.Errorf("%w: note %s", apperr.ErrRenderPrecondition, id)
	}

	path, err := s.exporter.Export(note.Title, preview)
	if err != nil {
		return nil, err
	}

	s.logger.Info("NoteService", "Note exported", map[string]interface{}{
		"note_id": id,
		"path":    path,
	})
	return &dto.ExportNoteResponse{Path: path}, nil
}

func (s *noteService) publishRender(ctx context.Context, noteId uuid.UUID) {
	payload, err := json.Marshal(dto.PublishRenderMessage{NoteId: noteId})
	if err != nil {
		return
	}
	// Rendering is auxiliary; a publish failure is logged, not returned.
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("NoteService", "Failed to publish render message", map[string]interface{}{
			"note_id": noteId,
			"error":   err.Error(),
		})
	}
}

func (s *noteService) hydrate(ctx context.Context, uow unitofwork.UnitOfWork, note *entity.Note) (*dto.ShowNoteResponse, error) {
	tags, err := uow.NoteTagRepository().GetNoteTags(ctx, note.Id)
	if err != nil {
		return nil, err
	}

	tasks, err := uow.TaskRepository().FindAll(ctx, specification.ByNoteID{NoteID: note.Id})
	if err != nil {
		return nil, err
	}

	tagRes := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		tagRes = append(tagRes, dto.TagResponse{
			Id:        t.Id,
			Name:      t.Name,
			Color:     t.Color,
			CreatedAt: t.CreatedAt,
		})
	}

	taskRes := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		taskRes = append(taskRes, dto.TaskResponse{
			Id:        t.Id,
			Title:     t.Title,
			Completed: t.Completed,
			DueDate:   t.DueDate,
			NoteId:    t.NoteId,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		})
	}

	return &dto.ShowNoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		ProjectId: note.ProjectId,
		IsPinned:  note.IsPinned,
		Tags:      tagRes,
		Tasks:     taskRes,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}, nil
}

func noteToListItem(n *entity.Note) *dto.NoteListItemResponse {
	return &dto.NoteListItemResponse{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		ProjectId: n.ProjectId,
		IsPinned:  n.IsPinned,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
