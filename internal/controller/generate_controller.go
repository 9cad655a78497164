package controller

import (
	"lessonplan-review-be/internal/pkg/serverutils"
	"lessonplan-review-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGenerateController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Generate(ctx *fiber.Ctx) error
}

type generateController struct {
	generateService service.IGenerateService
}

func NewGenerateController(generateService service.IGenerateService) IGenerateController {
	return &generateController{
		generateService: generateService,
	}
}

func (c *generateController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/generate/v1")
	h.Use(auth)
	h.Get(":kind", c.Generate)
}

func (c *generateController) Generate(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	res, err := c.generateService.Generate(ctx.UserContext(), sessionId, ctx.Params("kind"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate document", res))
}
