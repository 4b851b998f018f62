package handlers

import (
	domain "ecoshop/internal/errors"
	"ecoshop/internal/services/verification"
	"ecoshop/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// SponsorHandler covers the green-fund admin flows.
type SponsorHandler struct {
	verificationService verification.Service
}

func NewSponsorHandler(verificationService verification.Service) *SponsorHandler {
	return &SponsorHandler{
		verificationService: verificationService,
	}
}

func (h *SponsorHandler) List(c *fiber.Ctx) error {
	sponsors, err := h.verificationService.ListSponsors(c.Context())
	if err != nil {
		return utils.InternalError(c, "failed to list sponsors")
	}
	return utils.Success(c, fiber.Map{"sponsors": sponsors})
}

func (h *SponsorHandler) Fund(c *fiber.Ctx) error {
	sponsorID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "invalid sponsor id")
	}

	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	sponsor, err := h.verificationService.FundSponsor(c.Context(), uint(sponsorID), input.Amount)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, fiber.Map{"sponsor": sponsor})
}

func (h *SponsorHandler) Disburse(c *fiber.Ctx) error {
	var input struct {
		BeneficiaryID uint    `json:"beneficiary_id"`
		Amount        float64 `json:"amount"`
		Purpose       string  `json:"purpose"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	ok, err := h.verificationService.DisburseReward(c.Context(), input.BeneficiaryID, input.Amount, input.Purpose)
	if err != nil {
		return domainError(c, err)
	}
	if !ok {
		return domainError(c, domain.ErrSponsorFundsExhausted)
	}

	return utils.Success(c, fiber.Map{"message": "disbursement successful"})
}
