package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	invalidIntervalMessage = "Invalid interval. Choose from 'daily', 'monthly', 'quarterly', 'yearly'."
	invalidYearMessage     = "Invalid year. Year must be an integer."
)

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// internalError logs the cause and hides it from the client.
func internalError(c *fiber.Ctx, log logrus.FieldLogger, err error) error {
	log.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error("request failed")

	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}
