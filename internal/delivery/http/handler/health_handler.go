package handler

import (
	"github.com/building-identifier/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
)

// HealthHandler отвечает на health-check
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{OK: true})
}
