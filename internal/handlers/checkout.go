package handlers

import (
	"ecoshop/internal/services/checkout"
	"ecoshop/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	checkoutService checkout.Service
}

func NewCheckoutHandler(checkoutService checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Items          []checkout.Item `json:"items"`
		DeliveryMethod string          `json:"delivery_method"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	result, err := h.checkoutService.Checkout(
		c.Context(),
		claims.UserID,
		input.Items,
		checkout.DeliveryMethod(input.DeliveryMethod),
	)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, result)
}
