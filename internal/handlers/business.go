package handlers

import (
	"ecoshop/internal/services/verification"
	"ecoshop/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// BusinessHandler covers the seller-side product and sale flows.
type BusinessHandler struct {
	verificationService verification.Service
}

func NewBusinessHandler(verificationService verification.Service) *BusinessHandler {
	return &BusinessHandler{
		verificationService: verificationService,
	}
}

func (h *BusinessHandler) CreateProduct(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input verification.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	product, err := h.verificationService.CreateProduct(c.Context(), claims.UserID, input)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, fiber.Map{"product": product})
}

func (h *BusinessHandler) ListProducts(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	products, err := h.verificationService.ListProducts(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "failed to list products")
	}

	return utils.Success(c, fiber.Map{"products": products})
}

func (h *BusinessHandler) RecordSale(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "invalid product id")
	}

	product, err := h.verificationService.RecordSale(c.Context(), uint(productID))
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, fiber.Map{"product": product})
}

// Stats exposes the derived read-only escrow views.
func (h *BusinessHandler) Stats(c *fiber.Ctx) error {
	lockedPool, err := h.verificationService.LockedPoolTotal(c.Context())
	if err != nil {
		return utils.InternalError(c, "failed to compute locked pool")
	}

	carbonCredits, err := h.verificationService.CarbonCreditsTotal(c.Context())
	if err != nil {
		return utils.InternalError(c, "failed to compute carbon credits")
	}

	return utils.Success(c, fiber.Map{
		"locked_pool_total":    lockedPool,
		"carbon_credits_total": carbonCredits,
	})
}
