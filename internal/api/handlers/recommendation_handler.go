package handlers

import (
	"errors"

	"cork/internal/dto"
	"cork/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RecommendationHandler struct {
	recService *service.RecommendationService
	logger     *zap.Logger
}

func NewRecommendationHandler(recService *service.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recService: recService,
		logger:     logger,
	}
}

// Recommend godoc
// @Summary Get wine recommendations
// @Description Get wine recommendations for a free-text preference query. Falls back to a curated list when the AI provider is unavailable.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendRequest true "Preference query"
// @Security Bearer
// @Success 200 {object} dto.RecommendationResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/recommendations [post]
func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := h.recService.Recommend(c.Context(), req.Query, optionalUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuery) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Query is required",
			})
		}
		h.logger.Error("Recommendation request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get recommendations",
		})
	}

	return c.JSON(result)
}

// History godoc
// @Summary Get recommendation history
// @Description List the caller's past recommendation requests, newest first
// @Tags recommendations
// @Produce json
// @Param limit query int false "Max entries (default 20)"
// @Security Bearer
// @Success 200 {array} dto.HistoryEntryResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/recommendations/history [get]
func (h *RecommendationHandler) History(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	limit := c.QueryInt("limit", 20)

	entries, err := h.recService.History(c.Context(), userID, limit)
	if err != nil {
		h.logger.Error("Failed to load history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load history",
		})
	}

	return c.JSON(entries)
}
