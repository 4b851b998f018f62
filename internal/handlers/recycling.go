package handlers

import (
	"ecoshop/internal/services/ledger"
	"ecoshop/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// RecyclingHandler covers the shipper flows: collecting waste entries and
// checking in a settlement batch.
type RecyclingHandler struct {
	ledgerService ledger.Service
}

func NewRecyclingHandler(ledgerService ledger.Service) *RecyclingHandler {
	return &RecyclingHandler{
		ledgerService: ledgerService,
	}
}

func (h *RecyclingHandler) Collect(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		CustomerName string  `json:"customer_name"`
		WasteType    string  `json:"waste_type"`
		Weight       float64 `json:"weight"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.Weight <= 0 {
		return utils.BadRequest(c, "weight must be greater than 0")
	}

	entry, err := h.ledgerService.AddRecycleItem(c.Context(), claims.UserID, input.CustomerName, input.WasteType, input.Weight)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, fiber.Map{"entry": entry})
}

func (h *RecyclingHandler) ProcessBatch(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	result, err := h.ledgerService.ProcessRecyclingBatch(c.Context(), claims.UserID)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, result)
}
