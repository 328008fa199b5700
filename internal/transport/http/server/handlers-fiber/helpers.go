package handlers_fiber

import (
	"errors"
	"net/http"

	"team-directory/internal/entities"
	"team-directory/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	msgNotFound   = "Resource not found."
	msgBadRequest = "Bad request."
	msgInternal   = "Internal server error."
)

var (
	errBadBody = fiber.NewError(http.StatusBadRequest, msgBadRequest)
	errBadID   = fiber.NewError(http.StatusNotFound, msgNotFound)
)

func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := msgInternal

	switch {
	case errors.Is(err, entities.ErrNotFound):
		status = http.StatusNotFound
		msg = entities.Message(err, msgNotFound)
	case errors.Is(err, entities.ErrValidation),
		errors.Is(err, entities.ErrConflict),
		errors.Is(err, entities.ErrNotConfigured),
		errors.Is(err, entities.ErrSync):
		status = http.StatusBadRequest
		msg = entities.Message(err, msgBadRequest)
	default:
		h.log.Errorw("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

// decodeBody decodes an optional JSON body; an empty body leaves v untouched.
func decodeBody(c *fiber.Ctx, v any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if err := c.App().Config().JSONDecoder(body, v); err != nil {
		return errBadBody
	}
	return nil
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, errBadID
	}
	return int64(id), nil
}

// ErrorHandler renders framework errors and recovered panics as JSON.
func ErrorHandler(log *zap.SugaredLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := http.StatusInternalServerError
		msg := msgInternal

		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			switch {
			case fe.Code == http.StatusNotFound:
				msg = msgNotFound
			case fe.Code == http.StatusBadRequest:
				msg = msgBadRequest
			case fe.Code < http.StatusInternalServerError:
				msg = fe.Message
			}
		}
		if status >= http.StatusInternalServerError {
			log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		}
		return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
	}
}
