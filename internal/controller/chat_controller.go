package controller

import (
	"lessonplan-review-be/internal/dto"
	"lessonplan-review-be/internal/pkg/serverutils"
	"lessonplan-review-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Send(ctx *fiber.Ctx) error
	Transcript(ctx *fiber.Ctx) error
	Suggestion(ctx *fiber.Ctx) error
	CancelPending(ctx *fiber.Ctx) error
	SaveAsNote(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/chat/v1")
	h.Use(auth)
	h.Post("", c.Send)
	h.Get("", c.Transcript)
	h.Get("suggestion/:action", c.Suggestion)
	h.Delete("pending/:turnId", c.CancelPending)
	h.Post(":index/note", c.SaveAsNote)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Send(ctx.UserContext(), sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) Transcript(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	res, err := c.chatService.Transcript(ctx.UserContext(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get transcript", res))
}

func (c *chatController) Suggestion(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	res, err := c.chatService.Suggestion(ctx.UserContext(), sessionId, ctx.Params("action"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get suggestion", res))
}

func (c *chatController) CancelPending(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	turnId, err := uuid.Parse(ctx.Params("turnId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid turn id")
	}

	if err := c.chatService.CancelPending(ctx.UserContext(), sessionId, turnId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success cancel reply", nil))
}

func (c *chatController) SaveAsNote(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	index, err := ctx.ParamsInt("index")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid turn index")
	}

	res, err := c.chatService.SaveAsNote(ctx.UserContext(), sessionId, index)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save to notes", res))
}
