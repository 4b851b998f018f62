package handlers

import (
	"ecoshop/internal/services/vault"
	"ecoshop/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type VaultHandler struct {
	vaultService vault.Service
}

func NewVaultHandler(vaultService vault.Service) *VaultHandler {
	return &VaultHandler{
		vaultService: vaultService,
	}
}

func (h *VaultHandler) Packages(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{
		"packages":       h.vaultService.Packages(),
		"reinvest_tiers": vault.ReinvestTiers(),
	})
}

func (h *VaultHandler) Stake(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		PackageID string  `json:"package_id"`
		Amount    float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	inv, err := h.vaultService.Stake(c.Context(), claims.UserID, input.PackageID, input.Amount)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, fiber.Map{"investment": inv})
}

func (h *VaultHandler) Unstake(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	investmentID := c.Params("id")
	credited, err := h.vaultService.Unstake(c.Context(), claims.UserID, investmentID)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"message":  "unstake successful",
		"credited": credited,
	})
}

func (h *VaultHandler) LockDetails(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	details, err := h.vaultService.LockDetails(c.Context(), claims.UserID, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, fiber.Map{"lock": details})
}

// Reinvest stakes a checkout reward at one of the fixed offer tiers.
func (h *VaultHandler) Reinvest(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		TierID string  `json:"tier_id"`
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	inv, err := h.vaultService.Reinvest(c.Context(), claims.UserID, input.TierID, input.Amount)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, fiber.Map{"investment": inv})
}
