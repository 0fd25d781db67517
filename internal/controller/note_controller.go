package controller

import (
	"notedesk/internal/dto"
	"notedesk/internal/pkg/serverutils"
	"notedesk/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	UpdateContent(ctx *fiber.Ctx) error
	UpdateTitle(ctx *fiber.Ctx) error
	SetPinned(ctx *fiber.Ctx) error
	MoveNote(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	SetCurrent(ctx *fiber.Ctx) error
	Current(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	AddTag(ctx *fiber.Ctx) error
	RemoveTag(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	h.Get("search", c.Search)
	h.Get("current", c.Current)
	h.Put("current", c.SetCurrent)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id/content", c.UpdateContent)
	h.Put(":id/title", c.UpdateTitle)
	h.Put(":id/pin", c.SetPinned)
	h.Put(":id/move", c.MoveNote)
	h.Post(":id/tags", c.AddTag)
	h.Delete(":id/tags/:tagId", c.RemoveTag)
	h.Post(":id/export", c.Export)
	h.Delete(":id", c.Delete)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	var projectId *uuid.UUID
	if raw := ctx.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err == nil {
			projectId = &id
		}
	}

	res, err := c.noteService.List(ctx.Context(), projectId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) UpdateContent(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := c.noteService.UpdateContent(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update note content", nil))
}

func (c *noteController) UpdateTitle(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteTitleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.noteService.UpdateTitle(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update note title", nil))
}

func (c *noteController) SetPinned(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SetNotePinnedRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := c.noteService.SetPinned(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success set note pinned", nil))
}

func (c *noteController) MoveNote(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.MoveNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.noteService.Move(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success move note", nil))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}

func (c *noteController) SetCurrent(ctx *fiber.Ctx) error {
	var req dto.SetCurrentNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.noteService.SetCurrent(ctx.Context(), serverutils.SessionID(ctx), req.Id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success set current note", nil))
}

func (c *noteController) Current(ctx *fiber.Ctx) error {
	res, err := c.noteService.Current(ctx.Context(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get current note", res))
}

func (c *noteController) Search(ctx *fiber.Ctx) error {
	res, err := c.noteService.Search(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search notes", res))
}

func (c *noteController) AddTag(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.AttachTagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.NoteId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.noteService.AddTag(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success add tag to note", nil))
}

func (c *noteController) RemoveTag(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	tagId, err := uuid.Parse(ctx.Params("tagId"))
	if err != nil {
		return err
	}

	req := dto.AttachTagRequest{NoteId: id, TagId: tagId}
	if err := c.noteService.RemoveTag(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove tag from note", nil))
}

func (c *noteController) Export(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Export(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success export note", res))
}
