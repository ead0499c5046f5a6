package serverutils

import (
	"errors"

	"github.com/237films-bot/subtrack/internal/pkg/apperror"
	"github.com/237films-bot/subtrack/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service errors onto HTTP status codes. Storage
// failures intentionally surface as a generic 500: the caller keeps its last
// known state and shows a notice, never a stack trace.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		switch {
		case errors.Is(err, apperror.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, err.Error()))
		case errors.Is(err, apperror.ErrValidation):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(fiber.StatusUnprocessableEntity, err.Error()))
		case errors.Is(err, apperror.ErrRateLimited):
			return ctx.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse(fiber.StatusTooManyRequests, err.Error()))
		case errors.Is(err, apperror.ErrUnauthorized):
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, err.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("HTTP", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}
