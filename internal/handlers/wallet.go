package handlers

import (
	"errors"

	domain "ecoshop/internal/errors"
	"ecoshop/internal/models"
	"ecoshop/internal/services/ledger"
	"ecoshop/internal/services/payout"
	"ecoshop/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	ledgerService ledger.Service
	payoutService payout.Service
}

func NewWalletHandler(ledgerService ledger.Service, payoutService payout.Service) *WalletHandler {
	return &WalletHandler{
		ledgerService: ledgerService,
		payoutService: payoutService,
	}
}

// GetWallet returns the full snapshot plus the derived staked amount and
// rank.
func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	snap, err := h.ledgerService.GetSnapshot(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "failed to get wallet")
	}

	return utils.Success(c, fiber.Map{
		"wallet":       snap,
		"stakedAmount": snap.StakedAmount(),
		"rank":         ledger.Rank(snap.TotalCO2Saved),
	})
}

func (h *WalletHandler) GetHistory(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	history, err := h.ledgerService.GetHistory(c.Context(), claims.UserID, limit, offset)
	if err != nil {
		return utils.InternalError(c, "failed to get history")
	}
	return utils.Success(c, fiber.Map{"history": history})
}

func (h *WalletHandler) Swap(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	vnd, err := h.ledgerService.SwapEcoToVnd(c.Context(), claims.UserID, input.Amount)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"message":      "swap successful",
		"vnd_credited": vnd,
	})
}

func (h *WalletHandler) Withdraw(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount float64 `json:"amount"`
		CardID uint    `json:"card_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	if err := h.payoutService.ValidateCard(c.Context(), claims.UserID, input.CardID); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if err := h.ledgerService.WithdrawVnd(c.Context(), claims.UserID, input.Amount); err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"message": "withdrawal successful",
		"amount":  input.Amount,
	})
}

func (h *WalletHandler) AddPayoutCard(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input models.CreatePayoutCardInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	card, err := h.payoutService.AddCard(c.Context(), claims.UserID, input)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return utils.Success(c, fiber.Map{"card": card})
}

func (h *WalletHandler) ListPayoutCards(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	cards, err := h.payoutService.ListCards(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "failed to list cards")
	}
	return utils.Success(c, fiber.Map{"cards": cards})
}

// domainError maps engine errors to HTTP responses: business conditions
// come back as 400s with a stable code, anything else is a 500.
func domainError(c *fiber.Ctx, err error) error {
	var derr *domain.DomainError
	if errors.As(err, &derr) {
		return utils.Respond(c, fiber.StatusBadRequest, fiber.Map{
			"error": derr.Message,
			"code":  derr.Code,
		})
	}
	return utils.InternalError(c, err.Error())
}
