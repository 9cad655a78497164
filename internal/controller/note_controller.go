package controller

import (
	"lessonplan-review-be/internal/dto"
	"lessonplan-review-be/internal/pkg/serverutils"
	"lessonplan-review-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Open(ctx *fiber.Ctx) error
	View(ctx *fiber.Ctx) error
	CloseDetail(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/note/v1")
	h.Use(auth)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get("open", c.Open)
	h.Delete("open", c.CloseDetail)
	h.Put(":id/open", c.View)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.UserContext(), sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.List(ctx.UserContext(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get notes", res))
}

func (c *noteController) Open(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Open(ctx.UserContext(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get open note", res))
}

func (c *noteController) View(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	res, err := c.noteService.View(ctx.UserContext(), sessionId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success view note", res))
}

func (c *noteController) CloseDetail(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.CloseDetail(ctx.UserContext(), sessionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success close note", dto.CloseNoteResponse{Closed: true}))
}
