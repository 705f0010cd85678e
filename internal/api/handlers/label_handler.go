package handlers

import (
	"cork/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LabelHandler struct {
	labelService *service.LabelService
	logger       *zap.Logger
}

func NewLabelHandler(labelService *service.LabelService, logger *zap.Logger) *LabelHandler {
	return &LabelHandler{
		labelService: labelService,
		logger:       logger,
	}
}

// Scan godoc
// @Summary Scan a wine label photo
// @Description Upload a label photo; the vision model reads it into a structured wine record
// @Tags labels
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Label photo (image)"
// @Security Bearer
// @Success 201 {object} dto.LabelScanResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/labels/scan [post]
func (h *LabelHandler) Scan(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	resp, err := h.labelService.Scan(c.Context(), userID, src, file.Filename)
	if err != nil {
		h.logger.Error("Failed to scan label", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to scan label",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List scanned labels
// @Description List the authenticated user's scanned labels, newest first
// @Tags labels
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.LabelScanResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/labels [get]
func (h *LabelHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	labels, err := h.labelService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list labels", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load labels",
		})
	}

	return c.JSON(labels)
}
