package presenters

import (
	"errors"

	"barnmonitor-backend/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

func StatusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindMissingField, domain.KindInvalidFormat:
		return fiber.StatusBadRequest
	case domain.KindDomainValidation:
		return fiber.StatusUnprocessableEntity
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindConflict:
		return fiber.StatusConflict
	case domain.KindNotAuthorized:
		return fiber.StatusUnauthorized
	case domain.KindUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleError writes err with the status its kind maps to. Internal errors
// are logged and their detail is not sent to the client.
func HandleError(c *fiber.Ctx, message string, err error) error {
	kind := domain.KindOf(err)
	status := StatusFor(kind)

	if kind == domain.KindInternal {
		zap.L().Error(message,
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return ErrorResponse(c, status, message, errors.New(domain.MessageInternalError))
	}

	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, status, message, errors.New(appErr.Message))
	}
	return ErrorResponse(c, status, message, err)
}
