package handlers

import (
	"errors"

	"cork/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewCatalogHandler(catalogService *service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// List godoc
// @Summary Browse the curated catalog
// @Description List curated wines, optionally filtered by style
// @Tags catalog
// @Produce json
// @Param style query string false "Wine style: red, white, sparkling or rose"
// @Success 200 {array} dto.Wine
// @Failure 400 {object} map[string]string
// @Router /api/v1/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	wines, err := h.catalogService.List(c.Context(), c.Query("style"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidStyle) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid style",
			})
		}
		h.logger.Error("Failed to list catalog", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load catalog",
		})
	}

	return c.JSON(wines)
}
