package handlers

import (
	"context"
	"errors"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/services"
	"github.com/gofiber/fiber/v2"
)

type trackingManager interface {
	LogFood(ctx context.Context, userID, foodItemID int64, quantityGrams float64) (*models.FoodEntry, error)
	LogWorkout(ctx context.Context, userID, workoutItemID int64, durationMinutes int) (*models.WorkoutEntry, error)
	DailySummary(ctx context.Context, userID int64) (*models.DailySummary, error)
	WeeklyAnalytics(ctx context.Context, userID int64) ([]models.WeeklyPoint, error)
}

type TrackingHandler struct {
	trackingService trackingManager
}

func NewTrackingHandler(trackingService trackingManager) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

type foodEntryRequest struct {
	FoodItemID    int64   `json:"food_item_id"`
	QuantityGrams float64 `json:"quantity_grams"`
}

type workoutEntryRequest struct {
	WorkoutItemID   int64 `json:"workout_item_id"`
	DurationMinutes int   `json:"duration_minutes"`
}

func (h *TrackingHandler) LogFood(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req foodEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	entry, err := h.trackingService.LogFood(c.Context(), userID, req.FoodItemID, req.QuantityGrams)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEntry):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "food_item_id and quantity_grams must be greater than 0"})
		case errors.Is(err, services.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Food item not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log food entry"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": entry})
}

func (h *TrackingHandler) LogWorkout(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req workoutEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	entry, err := h.trackingService.LogWorkout(c.Context(), userID, req.WorkoutItemID, req.DurationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEntry):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "workout_item_id and duration_minutes must be greater than 0"})
		case errors.Is(err, services.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout item not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log workout entry"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": entry})
}

func (h *TrackingHandler) GetDailySummary(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	summary, err := h.trackingService.DailySummary(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch summary"})
	}

	return c.JSON(fiber.Map{"summary": summary})
}

func (h *TrackingHandler) GetWeeklyAnalytics(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	points, err := h.trackingService.WeeklyAnalytics(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch analytics"})
	}

	return c.JSON(fiber.Map{"days": points})
}
