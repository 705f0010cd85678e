package handlers

import (
	"errors"
	"strings"

	"cork/internal/dto"
	"cork/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CellarHandler struct {
	cellarService *service.CellarService
	logger        *zap.Logger
}

func NewCellarHandler(cellarService *service.CellarService, logger *zap.Logger) *CellarHandler {
	return &CellarHandler{
		cellarService: cellarService,
		logger:        logger,
	}
}

// Add godoc
// @Summary Save a wine to the cellar
// @Description Add a wine to the authenticated user's cellar
// @Tags cellar
// @Accept json
// @Produce json
// @Param request body dto.AddCellarEntryRequest true "Wine to save"
// @Security Bearer
// @Success 201 {object} dto.CellarEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/cellar [post]
func (h *CellarHandler) Add(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.AddCellarEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Type) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and type are required",
		})
	}

	entry, err := h.cellarService.Add(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Failed to add cellar entry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save wine",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// List godoc
// @Summary List the cellar
// @Description List the authenticated user's saved wines, newest first
// @Tags cellar
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CellarEntryResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/cellar [get]
func (h *CellarHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	entries, err := h.cellarService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list cellar", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load cellar",
		})
	}

	return c.JSON(entries)
}

// Remove godoc
// @Summary Remove a wine from the cellar
// @Description Delete a cellar entry owned by the authenticated user
// @Tags cellar
// @Produce json
// @Param id path string true "Cellar entry ID"
// @Security Bearer
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/cellar/{id} [delete]
func (h *CellarHandler) Remove(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entry ID",
		})
	}

	if err := h.cellarService.Remove(c.Context(), entryID, userID); err != nil {
		if errors.Is(err, service.ErrCellarEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Cellar entry not found",
			})
		}
		h.logger.Error("Failed to remove cellar entry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove wine",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
