package handler

import (
	"errors"

	"cafeteria-admin/internal/apierror"
	"cafeteria-admin/internal/repository"
	"cafeteria-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodes the JSON body into req. A body that does not decode
// (bad JSON, wrong field type) is answered with 422 and false is returned;
// the caller must return nil without writing another response.
func parseBody(c *fiber.Ctx, req interface{}) bool {
	if err := c.BodyParser(req); err != nil {
		_ = c.Status(fiber.StatusUnprocessableEntity).JSON(apierror.NewValidation(map[string]string{
			"body": err.Error(),
		}))
		return false
	}
	return true
}

// writeError maps service errors to HTTP responses. Errors it does not know
// are returned for the fiber ErrorHandler to log and turn into a 500.
func writeError(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	var notFound *service.MenuItemNotFoundError

	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(apierror.NewValidation(verr.Fields))
	case errors.Is(err, service.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(apierror.New("Invalid id"))
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusBadRequest).JSON(apierror.New(notFound.Error()))
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(apierror.New("Not found"))
	case errors.Is(err, service.ErrInvalidPIN):
		return c.Status(fiber.StatusUnauthorized).JSON(apierror.New("Invalid PIN"))
	default:
		return err
	}
}

// idResponse is the body of every create endpoint.
type idResponse struct {
	ID string `json:"id"`
}
