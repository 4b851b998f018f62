package handlers

import (
	"ecoshop/internal/utils"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{"status": "ok"})
}
