package controller

import (
	"strings"

	"lessonplan-review-be/internal/dto"
	"lessonplan-review-be/internal/pkg/serverutils"
	"lessonplan-review-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISourceController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Ingest(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Selected(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
}

type sourceController struct {
	sourceService service.ISourceService
}

func NewSourceController(sourceService service.ISourceService) ISourceController {
	return &sourceController{
		sourceService: sourceService,
	}
}

func (c *sourceController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/source/v1")
	h.Use(auth)
	h.Post("", c.Ingest)
	h.Get("", c.Search)
	h.Get("selected", c.Selected)
	h.Put(":id/toggle", c.Toggle)
}

func (c *sourceController) Ingest(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	var req dto.IngestSourcesRequest
	if strings.HasPrefix(string(ctx.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		// Only the descriptors are kept; file bodies are never read.
		form, err := ctx.MultipartForm()
		if err != nil {
			return fiber.ErrBadRequest
		}
		for _, fh := range form.File["files"] {
			req.Files = append(req.Files, dto.FileDescriptor{
				Name:      fh.Filename,
				MediaType: fh.Header.Get(fiber.HeaderContentType),
				SizeBytes: fh.Size,
			})
		}
	} else if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sourceService.Ingest(ctx.UserContext(), sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success upload sources", res))
}

func (c *sourceController) Search(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	res, err := c.sourceService.Search(ctx.UserContext(), sessionId, &dto.SearchSourcesRequest{Query: ctx.Query("q")})
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search sources", res))
}

func (c *sourceController) Selected(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	res, err := c.sourceService.Selected(ctx.UserContext(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get selected sources", res))
}

func (c *sourceController) Toggle(ctx *fiber.Ctx) error {
	sessionId, err := serverutils.SessionIdFrom(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid source id")
	}

	res, err := c.sourceService.Toggle(ctx.UserContext(), sessionId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success toggle source", res))
}
