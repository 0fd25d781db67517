package controller

import (
	"fmt"

	"notedesk/internal/apperr"
	"notedesk/internal/dto"
	"notedesk/internal/pkg/serverutils"
	"notedesk/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWorkspaceController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Rename(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	SetCurrent(ctx *fiber.Ctx) error
	Current(ctx *fiber.Ctx) error
	AddProfile(ctx *fiber.Ctx) error
	RenameProfile(ctx *fiber.Ctx) error
	DuplicateProfile(ctx *fiber.Ctx) error
	RemoveProfile(ctx *fiber.Ctx) error
	SwitchProfile(ctx *fiber.Ctx) error
	UpdateProfileTheme(ctx *fiber.Ctx) error
	UpdateProfileSettings(ctx *fiber.Ctx) error
	ListTabs(ctx *fiber.Ctx) error
	CreateTab(ctx *fiber.Ctx) error
	SetTabActive(ctx *fiber.Ctx) error
	DeleteTab(ctx *fiber.Ctx) error
	CreateBackup(ctx *fiber.Ctx) error
	ListBackups(ctx *fiber.Ctx) error
}

type workspaceController struct {
	workspaceService service.IWorkspaceService
	tabService       service.ITabService
}

func NewWorkspaceController(workspaceService service.IWorkspaceService, tabService service.ITabService) IWorkspaceController {
	return &workspaceController{
		workspaceService: workspaceService,
		tabService:       tabService,
	}
}

func (c *workspaceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/workspace/v1")
	h.Get("current", c.Current)
	h.Put("current", c.SetCurrent)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Rename)
	h.Delete(":id", c.Delete)
	h.Post(":id/profiles", c.AddProfile)
	h.Put(":id/profiles/switch", c.SwitchProfile)
	h.Put(":id/profiles/:profileId", c.RenameProfile)
	h.Post(":id/profiles/:profileId/duplicate", c.DuplicateProfile)
	h.Put(":id/profiles/:profileId/theme", c.UpdateProfileTheme)
	h.Put(":id/profiles/:profileId/settings", c.UpdateProfileSettings)
	h.Delete(":id/profiles/:profileId", c.RemoveProfile)
	h.Get(":id/tabs", c.ListTabs)
	h.Post(":id/tabs", c.CreateTab)
	h.Put(":id/tabs/:tabId/active", c.SetTabActive)
	h.Delete(":id/tabs/:tabId", c.DeleteTab)
	h.Get(":id/backups", c.ListBackups)
	h.Post(":id/backups", c.CreateBackup)
}

func (c *workspaceController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateWorkspaceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.workspaceService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create workspace", res))
}

func (c *workspaceController) Show(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.workspaceService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show workspace", res))
}

func (c *workspaceController) List(ctx *fiber.Ctx) error {
	res, err := c.workspaceService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list workspaces", res))
}

func (c *workspaceController) Rename(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.RenameWorkspaceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.workspaceService.Rename(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success rename workspace", res))
}

func (c *workspaceController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	if err := c.workspaceService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete workspace", nil))
}

func (c *workspaceController) SetCurrent(ctx *fiber.Ctx) error {
	var req dto.SetCurrentWorkspaceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.workspaceService.SetCurrent(ctx.Context(), serverutils.SessionID(ctx), req.Id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success set current workspace", nil))
}

func (c *workspaceController) Current(ctx *fiber.Ctx) error {
	res, err := c.workspaceService.Current(ctx.Context(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get current workspace", res))
}

func (c *workspaceController) AddProfile(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.AddProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.WorkspaceId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.workspaceService.AddProfile(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add profile", res))
}

func (c *workspaceController) RenameProfile(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	profileId, err := parseProfileParam(ctx)
	if err != nil {
		return err
	}

	var req dto.RenameProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.WorkspaceId = id
	req.ProfileId = profileId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.workspaceService.RenameProfile(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success rename profile", res))
}

func (c *workspaceController) DuplicateProfile(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	profileId, err := parseProfileParam(ctx)
	if err != nil {
		return err
	}

	var req dto.DuplicateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.WorkspaceId = id
	req.ProfileId = profileId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.workspaceService.DuplicateProfile(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success duplicate profile", res))
}

func (c *workspaceController) RemoveProfile(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	profileId, err := parseProfileParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.workspaceService.RemoveProfile(ctx.Context(), id, profileId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove profile", res))
}

func (c *workspaceController) SwitchProfile(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SwitchProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.WorkspaceId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.workspaceService.SwitchProfile(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success switch profile", res))
}

func (c *workspaceController) UpdateProfileTheme(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	profileId, err := parseProfileParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileThemeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.WorkspaceId = id
	req.ProfileId = profileId

	res, err := c.workspaceService.UpdateProfileTheme(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update profile theme", res))
}

func (c *workspaceController) UpdateProfileSettings(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	profileId, err := parseProfileParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.WorkspaceId = id
	req.ProfileId = profileId

	res, err := c.workspaceService.UpdateProfileSettings(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update profile settings", res))
}

func (c *workspaceController) ListTabs(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.tabService.ListByWorkspace(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list tabs", res))
}

func (c *workspaceController) CreateTab(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateTabRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.WorkspaceId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tabService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create tab", res))
}

func (c *workspaceController) SetTabActive(ctx *fiber.Ctx) error {
	tabId, err := parseTabParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SetTabActiveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = tabId

	res, err := c.tabService.SetActive(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success set tab active state", res))
}

func (c *workspaceController) DeleteTab(ctx *fiber.Ctx) error {
	tabId, err := parseTabParam(ctx)
	if err != nil {
		return err
	}

	if err := c.tabService.Delete(ctx.Context(), tabId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete tab", nil))
}

func (c *workspaceController) CreateBackup(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateBackupRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
	}
	req.WorkspaceId = id

	res, err := c.workspaceService.CreateBackup(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create backup", res))
}

func (c *workspaceController) ListBackups(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.workspaceService.ListBackups(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list backups", res))
}

func parseTabParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("tabId"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid tab id", apperr.ErrValidation)
	}
	return id, nil
}

func parseProfileParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("profileId"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid profile id", apperr.ErrValidation)
	}
	return id, nil
}
