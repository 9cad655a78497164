package serverutils

import (
	"errors"

	"lessonplan-review-be/pkg/review"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps an error to the HTTP status the API reports for it.
func StatusFor(err error) int {
	var fiberErr *fiber.Error
	var validationErr *ValidationError

	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.Is(err, review.ErrValidationRejected):
		return fiber.StatusBadRequest
	case errors.Is(err, review.ErrPreconditionUnmet):
		return fiber.StatusConflict
	case errors.Is(err, review.ErrLookupMiss):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler renders any error returned by a handler as the JSON
// envelope. Internal errors keep their detail out of the response.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := StatusFor(err)
	msg := err.Error()
	if code == fiber.StatusInternalServerError {
		msg = "Internal server error"
	}
	return ctx.Status(code).JSON(ErrorResponse(code, msg))
}

func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if err := ctx.Next(); err != nil {
			return ErrorHandler(ctx, err)
		}
		return nil
	}
}
