package handlers

import (
	"ecoshop/internal/services/verification"
	"ecoshop/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// VerificationHandler covers the verifier-side audit flows.
type VerificationHandler struct {
	verificationService verification.Service
}

func NewVerificationHandler(verificationService verification.Service) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
	}
}

func (h *VerificationHandler) ListPending(c *fiber.Ctx) error {
	products, err := h.verificationService.ListPending(c.Context())
	if err != nil {
		return utils.InternalError(c, "failed to list pending products")
	}
	return utils.Success(c, fiber.Map{"products": products})
}

func (h *VerificationHandler) Verdict(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	productID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "invalid product id")
	}

	var input struct {
		Pass       bool   `json:"pass"`
		FailReason string `json:"fail_reason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if !input.Pass && input.FailReason == "" {
		return utils.BadRequest(c, "fail_reason is required for a failing verdict")
	}

	result, err := h.verificationService.Verify(c.Context(), uint(productID), claims.Email, input.Pass, input.FailReason)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, result)
}
