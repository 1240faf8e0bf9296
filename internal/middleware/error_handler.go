package middleware

import (
	"errors"

	"cafeteria-admin/internal/apierror"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler is the fiber error handler for anything a handler did not
// map itself. Unknown errors are logged and answered with a bare 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(apierror.New(fe.Message))
	}

	log.Error().
		Err(err).
		Str("request_id", RequestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("unhandled error")

	return c.Status(fiber.StatusInternalServerError).JSON(apierror.New("Internal Server Error"))
}
