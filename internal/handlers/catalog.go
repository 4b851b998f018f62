package handlers

import (
	"ecoshop/internal/repositories"
	"ecoshop/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the public product catalog.
type CatalogHandler struct {
	products repositories.ProductRepository
}

func NewCatalogHandler(products repositories.ProductRepository) *CatalogHandler {
	return &CatalogHandler{products: products}
}

func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	products, err := h.products.List(c.Context(), limit, offset)
	if err != nil {
		return utils.InternalError(c, "failed to list products")
	}
	return utils.Success(c, fiber.Map{"products": products})
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "invalid product id")
	}

	product, err := h.products.GetByID(c.Context(), uint(productID))
	if err != nil {
		return utils.NotFound(c, "product not found")
	}
	return utils.Success(c, fiber.Map{"product": product})
}
