package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Health godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(HealthResponse{Status: "ok"})
}
