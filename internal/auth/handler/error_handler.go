package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	autherror "github.com/dcsil/k.ai/internal/errors"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// NewErrorHandler maps errors to responses exactly once, at the fiber
// boundary. Domain errors carry their own status and code; anything else is a
// logged, non-revealing 500.
func NewErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var apiErr *autherror.Error
		if errors.As(err, &apiErr) {
			if apiErr.Code == "ACCOUNT_LOCKED" {
				if retry, ok := apiErr.Details["retryAfterSeconds"].(int); ok && retry > 0 {
					c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retry))
				}
			}
			return c.Status(apiErr.Status).JSON(fiber.Map{"error": errorBody{
				Code:    apiErr.Code,
				Message: apiErr.Message,
				Details: apiErr.Details,
			}})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": errorBody{
				Code:    statusCode(fiberErr.Code),
				Message: fiberErr.Message,
			}})
		}

		log.Error("unhandled API error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": errorBody{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: "An unexpected error occurred",
		}})
	}
}

func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
