package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Sentinel errors services raise for the generic HTTP mapping below.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("record not found")
	ErrForbidden       = errors.New("forbidden")
)

// ErrorHandlerMiddleware converts errors bubbled out of handlers into the JSON
// error envelope. Fiber errors keep their status; sentinel errors map to their
// HTTP equivalents; everything else is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := err.Error()

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		case errors.Is(err, ErrUnauthenticated):
			code = fiber.StatusUnauthorized
		case errors.Is(err, ErrNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, ErrForbidden):
			code = fiber.StatusForbidden
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
