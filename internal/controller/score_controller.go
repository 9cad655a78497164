package controller

import (
	"lessonplan-review-be/internal/dto"
	"lessonplan-review-be/internal/pkg/serverutils"
	"lessonplan-review-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IScoreController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Current(ctx *fiber.Ctx) error
	Rate(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	Records(ctx *fiber.Ctx) error
}

type scoreController struct {
	scoreService service.IScoreService
}

func NewScoreController(scoreService service.IScoreService) IScoreController {
	return &scoreController{
		scoreService: scoreService,
	}
}

func (c *scoreController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/score/v1")
	h.Use(auth)
	h.Get("", c.Current)
	h.Delete("", c.Reset)
	h.Get("records", c.Records)
	h.Post("submit", c.Submit)
	h.Put(":category", c.Rate)
	h.Get(":category/preview", c.Preview)
}

func (c *scoreController) Current(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	res, err := c.scoreService.Current(ctx.UserContext(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get scores", res))
}

func (c *scoreController) Rate(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	var req dto.RateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	req.Category = ctx.Params("category")

	res, err := c.scoreService.Rate(ctx.UserContext(), sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success rate category", res))
}

func (c *scoreController) Preview(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	res, err := c.scoreService.Preview(ctx.UserContext(), sessionId, ctx.Params("category"), ctx.QueryInt("value", 0))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success preview rating", res))
}

func (c *scoreController) Submit(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	var req dto.SubmitScoreRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.ErrBadRequest
		}
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scoreService.Submit(ctx.UserContext(), sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success submit score", res))
}

func (c *scoreController) Reset(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	res, err := c.scoreService.Reset(ctx.UserContext(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success reset scores", res))
}

func (c *scoreController) Records(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	res, err := c.scoreService.Records(ctx.UserContext(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get score records", res))
}
