package controller

import (
	"lessonplan-review-be/internal/dto"
	"lessonplan-review-be/internal/pkg/serverutils"
	"lessonplan-review-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	Snapshot(ctx *fiber.Ctx) error
	Close(ctx *fiber.Ctx) error
	SwitchTab(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/session/v1")
	h.Post("", c.Create) // issues the token every other route needs
	h.Get("", auth, c.Snapshot)
	h.Delete("", auth, c.Close)
	h.Put("tab", auth, c.SwitchTab)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	res, err := c.sessionService.Create(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *sessionController) Snapshot(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	res, err := c.sessionService.Snapshot(ctx.UserContext(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *sessionController) Close(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	if err := c.sessionService.Close(ctx.UserContext(), sessionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success close session", nil))
}

func (c *sessionController) SwitchTab(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	var req dto.SwitchTabRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.SwitchTab(ctx.UserContext(), sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success switch tab", res))
}
