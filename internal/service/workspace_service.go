package service

import (
	"context"
	"encoding/json"
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

type IWorkspaceService interface {
	Create(ctx context.Context, req *dto.CreateWorkspaceRequest) (*dto.WorkspaceResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.WorkspaceResponse, error)
	List(ctx context.Context) ([]*dto.WorkspaceResponse, error)
	Rename(ctx context.Context, req *dto.RenameWorkspaceRequest) (*dto.WorkspaceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetCurrent(ctx context.Context, sessionID string, id uuid.UUID) error
	Current(ctx context.Context, sessionID string) (*dto.WorkspaceResponse, error)
	AddProfile(ctx context.Context, req *dto.AddProfileRequest) (*dto.WorkspaceResponse, error)
	RenameProfile(ctx context.Context, req *dto.RenameProfileRequest) (*dto.WorkspaceResponse, error)
	DuplicateProfile(ctx context.Context, req *dto.DuplicateProfileRequest) (*dto.WorkspaceResponse, error)
	RemoveProfile(ctx context.Context, workspaceId, profileId uuid.UUID) (*dto.WorkspaceResponse, error)
	SwitchProfile(ctx context.Context, req *dto.SwitchProfileRequest) (*dto.WorkspaceResponse, error)
	UpdateProfileTheme(ctx context.Context, req *dto.UpdateProfileThemeRequest) (*dto.WorkspaceResponse, error)
	UpdateProfileSettings(ctx context.Context, req *dto.UpdateProfileSettingsRequest) (*dto.WorkspaceResponse, error)
	CreateBackup(ctx context.Context, req *dto.CreateBackupRequest) (*dto.BackupResponse, error)
	ListBackups(ctx context.Context, workspaceId uuid.UUID) ([]*dto.BackupResponse, error)
}

type workspaceService struct {
	uowFactory unitofwork.RepositoryFactory
	selections *memory.SelectionRepository
}

func NewWorkspaceService(uowFactory unitofwork.RepositoryFactory, selections *memory.SelectionRepository) IWorkspaceService {
	return &workspaceService{
		uowFactory: uowFactory,
		selections: selections,
	}
}

func defaultTheme() entity.ProfileTheme {
	return entity.ProfileTheme{
		IsDarkMode:      false,
		BackgroundColor: "#ffffff",
		SidebarColor:    "#f5f5f5",
		ButtonColor:     "#2196f3",
		AccentColor:     "#2196f3",
		FontFamily:      "Roboto",
		FontSize:        14,
		BorderRadius:    4,
		Spacing:         8,
	}
}

func defaultSettings() entity.EditorSettings {
	return entity.EditorSettings{
		DefaultView:      "single",
		SplitOrientation: "vertical",
		SplitRatio:       0.5,
		ShowLineNumbers:  true,
		AutoSave:         true,
		SpellCheck:       true,
		FontSize:         14,
		FontFamily:       "monospace",
		TabSize:          2,
		UseSoftTabs:      true,
		LineHeight:       1.5,
		ShowInvisibles:   false,
		WordWrap:         true,
	}
}

// Create builds a workspace with one default profile, which is also the
// current profile. A workspace never exists without a profile.
func (s *workspaceService) Create(ctx context.Context, req *dto.CreateWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	name, err := requiredText("name", req.Name)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile := &entity.WorkspaceProfile{
		Id:       uuid.New(),
		Name:     "Default",
		Theme:    defaultTheme(),
		Settings: defaultSettings(),
	}
	workspace := entity.Workspace{
		Id:               uuid.New(),
		Name:             name,
		Path:             req.Path,
		CurrentProfileId: profile.Id,
		Profiles:         []*entity.WorkspaceProfile{profile},
	}

	if err := uow.WorkspaceRepository().Create(ctx, &workspace); err != nil {
		return nil, err
	}
	return workspaceToResponse(&workspace), nil
}

func (s *workspaceService) Show(ctx context.Context, id uuid.UUID) (*dto.WorkspaceResponse, error) {
	workspace, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return workspaceToResponse(workspace), nil
}

func (s *workspaceService) List(ctx context.Context) ([]*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	workspaces, err := uow.WorkspaceRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.WorkspaceResponse, 0, len(workspaces))
	for _, w := range workspaces {
		res = append(res, workspaceToResponse(w))
	}
	return res, nil
}

func (s *workspaceService) Rename(ctx context.Context, req *dto.RenameWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	name, err := requiredText("name", req.Name)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	workspace, err := s.findWith(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	workspace.Name = name
	if err := uow.WorkspaceRepository().Update(ctx, workspace); err != nil {
		return nil, err
	}
	return workspaceToResponse(workspace), nil
}

// Delete removes the workspace, its tabs and its backups in one
// transaction, then drops any selection pointing at it.
func (s *workspaceService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findWith(ctx, uow, id); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.TabRepository().DeleteByWorkspaceId(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.BackupRepository().DeleteByWorkspaceId(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.WorkspaceRepository().Delete(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.selections.ClearWorkspace(id)
	return nil
}

func (s *workspaceService) SetCurrent(ctx context.Context, sessionID string, id uuid.UUID) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	sel, found := s.selections.Get(sessionID)
	if !found {
		sel = &memory.Selection{SessionID: sessionID}
	}
	sel.WorkspaceID = &id
	s.selections.Save(sel)
	return nil
}

func (s *workspaceService) Current(ctx context.Context, sessionID string) (*dto.WorkspaceResponse, error) {
	sel, found := s.selections.Get(sessionID)
	if !found || sel.WorkspaceID == nil {
		return nil, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	workspace, err := uow.WorkspaceRepository().FindOne(ctx, specification.ByID{ID: *sel.WorkspaceID})
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		return nil, nil
	}
	return workspaceToResponse(workspace), nil
}

func (s *workspaceService) AddProfile(ctx context.Context, req *dto.AddProfileRequest) (*dto.WorkspaceResponse, error) {
	name, err := requiredText("name", req.Name)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	workspace, err := s.findWith(ctx, uow, req.WorkspaceId)
	if err != nil {
		return nil, err
	}

	workspace.Profiles = append(workspace.Profiles, &entity.WorkspaceProfile{
		Id:       uuid.New(),
		Name:     name,
		Theme:    defaultTheme(),
		Settings: defaultSettings(),
	})

	if err := uow.WorkspaceRepository().Update(ctx, workspace); err != nil {
		return nil, err
	}
	return workspaceToResponse(workspace), nil
}

func (s *workspaceService) RenameProfile(ctx context.Context, req *dto.RenameProfileRequest) (*dto.WorkspaceResponse, error) {
	name, err := requiredText("name", req.Name)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	workspace, err := s.findWith(ctx, uow, req.WorkspaceId)
	if err != nil {
		return nil, err
	}

	profile := workspace.Profile(req.ProfileId)
	if profile == nil {
		return nil, fmt.Errorf("%w: profile %s", apperr.ErrNotFound, req.ProfileId)
	}
	profile.Name = name

	if err := uow.WorkspaceRepository().Update(ctx, workspace); err != nil {
		return nil, err
	}
	return workspaceToResponse(workspace), nil
}

// DuplicateProfile copies an existing profile, theme and settings
// included, under a new id and the given name.
func (s *workspaceService) DuplicateProfile(ctx context.Context, req *dto.DuplicateProfileRequest) (*dto.WorkspaceResponse, error) {
	name, err := requiredText("name", req.Name)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	workspace, err := s.findWith(ctx, uow, req.WorkspaceId)
	if err != nil {
		return nil, err
	}

	source := workspace.Profile(req.ProfileId)
	if source == nil {
		return nil, fmt.Errorf("%w: profile %s", apperr.ErrNotFound, req.ProfileId)
	}

	workspace.Profiles = append(workspace.Profiles, &entity.WorkspaceProfile{
		Id:       uuid.New(),
		Name:     name,
		Theme:    source.Theme,
		Settings: source.Settings,
	})

	if err := uow.WorkspaceRepository().Update(ctx, workspace); err != nil {
		return nil, err
	}
	return workspaceToResponse(workspace), nil
}

// RemoveProfile drops a profile from the workspace. The last remaining
// profile can never be removed; removing the current profile moves the
// selection to the first remaining one.
func (s *workspaceService) RemoveProfile(ctx context.Context, workspaceId, profileId uuid.UUID) (*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	workspace, err := s.findWith(ctx, uow, workspaceId)
	if err != nil {
		return nil, err
	}

	if len(workspace.Profiles) <= 1 {
		return workspaceToResponse(workspace), nil
	}

	kept := make([]*entity.WorkspaceProfile, 0, len(workspace.Profiles)-1)
	removed := false
	for _, p := range workspace.Profiles {
		if p.Id == profileId {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return nil, fmt.Errorf("%w: profile %s", apperr.ErrNotFound, profileId)
	}

	workspace.Profiles = kept
	if workspace.CurrentProfileId == profileId {
		workspace.CurrentProfileId = kept[0].Id
	}

	if err := uow.WorkspaceRepository().Update(ctx, workspace); err != nil {
		return nil, err
	}
	return workspaceToResponse(workspace), nil
}

// SwitchProfile makes a profile current. The profile must belong to the
// workspace; pointing at another workspace's profile is rejected.
func (s *workspaceService) SwitchProfile(ctx context.Context, req *dto.SwitchProfileRequest) (*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	workspace, err := s.findWith(ctx, uow, req.WorkspaceId)
	if err != nil {
		return nil, err
	}

	if workspace.Profile(req.ProfileId) == nil {
		return nil, fmt.Errorf("%w: profile %s does not belong to workspace %s",
			apperr.ErrReference, req.ProfileId, req.WorkspaceId)
	}

	workspace.CurrentProfileId = req.ProfileId
	if err := uow.WorkspaceRepository().Update(ctx, workspace); err != nil {
		return nil, err
	}
	return workspaceToResponse(workspace), nil
}

func (s *workspaceService) UpdateProfileTheme(ctx context.Context, req *dto.UpdateProfileThemeRequest) (*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	workspace, err := s.findWith(ctx, uow, req.WorkspaceId)
	if err != nil {
		return nil, err
	}

	profile := workspace.Profile(req.ProfileId)
	if profile == nil {
		return nil, fmt.Errorf("%w: profile %s", apperr.ErrNotFound, req.ProfileId)
	}
	profile.Theme = req.Theme

	if err := uow.WorkspaceRepository().Update(ctx, workspace); err != nil {
		return nil, err
	}
	return workspaceToResponse(workspace), nil
}

func (s *workspaceService) UpdateProfileSettings(ctx context.Context, req *dto.UpdateProfileSettingsRequest) (*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	workspace, err := s.findWith(ctx, uow, req.WorkspaceId)
	if err != nil {
		return nil, err
	}

	profile := workspace.Profile(req.ProfileId)
	if profile == nil {
		return nil, fmt.Errorf("%w: profile %s", apperr.ErrNotFound, req.ProfileId)
	}
	profile.Settings = req.Settings

	if err := uow.WorkspaceRepository().Update(ctx, workspace); err != nil {
		return nil, err
	}
	return workspaceToResponse(workspace), nil
}

// CreateBackup stores a snapshot row for the workspace. The client may
// supply the payload; without one the workspace record itself, tabs
// included, becomes the snapshot.
func (s *workspaceService) CreateBackup(ctx context.Context, req *dto.CreateBackupRequest) (*dto.BackupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	workspace, err := s.findWith(ctx, uow, req.WorkspaceId)
	if err != nil {
		return nil, err
	}

	data := string(req.Data)
	if data == "" {
		tabs, err := uow.TabRepository().FindAll(ctx, specification.ByWorkspaceID{WorkspaceID: req.WorkspaceId})
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(map[string]interface{}{
			"workspace": workspaceToResponse(workspace),
			"tabs":      tabs,
		})
		if err != nil {
			return nil, err
		}
		data = string(raw)
	}

	backup := entity.Backup{
		Id:          uuid.New(),
		WorkspaceId: req.WorkspaceId,
		Data:        data,
		CreatedAt:   time.Now(),
	}
	if err := uow.BackupRepository().Create(ctx, &backup); err != nil {
		return nil, err
	}
	return backupToResponse(&backup), nil
}

func (s *workspaceService) ListBackups(ctx context.Context, workspaceId uuid.UUID) ([]*dto.BackupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	backups, err := uow.BackupRepository().FindAll(ctx, specification.ByWorkspaceID{WorkspaceID: workspaceId})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.BackupResponse, 0, len(backups))
	for _, b := range backups {
		res = append(res, backupToResponse(b))
	}
	return res, nil
}

func (s *workspaceService) find(ctx context.Context, id uuid.UUID) (*entity.Workspace, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.findWith(ctx, uow, id)
}

func (s *workspaceService) findWith(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Workspace, error) {
	workspace, err := uow.WorkspaceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		return nil, fmt.Errorf("%w: workspace %s", apperr.ErrNotFound, id)
	}
	return workspace, nil
}

func backupToResponse(b *entity.Backup) *dto.BackupResponse {
	return &dto.BackupResponse{
		Id:          b.Id,
		WorkspaceId: b.WorkspaceId,
		CreatedAt:   b.CreatedAt,
	}
}

func workspaceToResponse(w *entity.Workspace) *dto.WorkspaceResponse {
	profiles := make([]dto.ProfileResponse, 0, len(w.Profiles))
	for _, p := range w.Profiles {
		profiles = append(profiles, dto.ProfileResponse{
			Id:       p.Id,
			Name:     p.Name,
			Theme:    p.Theme,
			Settings: p.Settings,
		})
	}
	return &dto.WorkspaceResponse{
		Id:               w.Id,
		Name:             w.Name,
		Path:             w.Path,
		CurrentProfileId: w.CurrentProfileId,
		Profiles:         profiles,
	}
}
