package serverutils

import (
	"errors"

	"notedesk/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps domain errors bubbling out of handlers to
// HTTP status codes with the standard response envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		code := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, apperr.ErrValidation):
			code = fiber.StatusBadRequest
		case errors.Is(err, apperr.ErrNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, apperr.ErrReference):
			code = fiber.StatusConflict
		case errors.Is(err, apperr.ErrRenderPrecondition):
			code = fiber.StatusPreconditionFailed
		case errors.Is(err, apperr.ErrStorageUnavailable):
			code = fiber.StatusServiceUnavailable
		}

		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
