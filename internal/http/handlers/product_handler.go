package handlers

import (
	"github.com/gofiber/fiber/v2"

	"xtreme/internal/log"
	"xtreme/internal/services"
	"xtreme/internal/validate"
)

type ProductHandler struct {
	Shop    *Shop
	Catalog *services.CatalogService
}

// List is the catalog home page.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ps, err := h.Catalog.List()
	if err != nil {
		log.Error(c, "catalog.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load the catalog"})
	}
	return h.Shop.open(c).page("index", fiber.Map{"Title": "Каталог", "Products": ps})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return notFound(c, "This item is no longer available")
	}
	p, found := h.Catalog.Lookup(id)
	if !found {
		return notFound(c, "This item is no longer available")
	}
	return h.Shop.open(c).page("product", fiber.Map{"Title": p.Name, "P": p})
}
