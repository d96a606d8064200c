package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts panics and unhandled fiber errors into
// the common error envelope so clients always get JSON.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				_ = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
			}
		}()

		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		if fe, ok := err.(*fiber.Error); ok {
			code = fe.Code
		}
		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
