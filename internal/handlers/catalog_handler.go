package handlers

import (
	"context"
	"errors"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/repository"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/services"
	"github.com/gofiber/fiber/v2"
)

type catalogManager interface {
	ListFoods(ctx context.Context) ([]models.FoodItem, error)
	CreateFood(ctx context.Context, input repository.FoodItemInput, createdBy *int64) (*models.FoodItem, error)
	UpdateFood(ctx context.Context, id int64, input repository.FoodItemInput) (*models.FoodItem, error)
	DeleteFood(ctx context.Context, id int64) (int64, error)
	ListWorkouts(ctx context.Context) ([]models.WorkoutItem, error)
	CreateWorkout(ctx context.Context, input repository.WorkoutItemInput) (*models.WorkoutItem, error)
	UpdateWorkout(ctx context.Context, id int64, input repository.WorkoutItemInput) (*models.WorkoutItem, error)
	DeleteWorkout(ctx context.Context, id int64) (int64, error)
}

type CatalogHandler struct {
	catalogService catalogManager
}

func NewCatalogHandler(catalogService catalogManager) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type foodItemRequest struct {
	Name          string  `json:"name"`
	Calories      float64 `json:"calories"`
	Proteins      float64 `json:"proteins"`
	Fats          float64 `json:"fats"`
	Carbohydrates float64 `json:"carbohydrates"`
}

type workoutItemRequest struct {
	Name            string  `json:"name"`
	CaloriesPerHour float64 `json:"calories_per_hour"`
}

// ListFoods fetches the catalog name-ascending, then applies the in-memory
// search and sort the admin table uses.
func (h *CatalogHandler) ListFoods(c *fiber.Ctx) error {
	items, err := h.catalogService.ListFoods(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch food items"})
	}

	items = services.Search(items, c.Query("search"), func(item models.FoodItem) []string {
		return []string{item.Name}
	})
	if c.Query("sort") == "name" {
		services.SortByKey(items, c.Query("dir"), func(item models.FoodItem) string {
			return item.Name
		})
	}

	return c.JSON(fiber.Map{"food_items": items})
}

func (h *CatalogHandler) CreateFood(c *fiber.Ctx) error {
	var req foodItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateFoodItemRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	var createdBy *int64
	if userID, err := parseUserID(c); err == nil {
		createdBy = &userID
	}

	item, err := h.catalogService.CreateFood(c.Context(), foodItemInput(req), createdBy)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create food item"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"food_item": item})
}

func (h *CatalogHandler) UpdateFood(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item id"})
	}

	var req foodItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateFoodItemRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	item, err := h.catalogService.UpdateFood(c.Context(), id, foodItemInput(req))
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Food item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update food item"})
	}
	return c.JSON(fiber.Map{"food_item": item})
}

func (h *CatalogHandler) DeleteFood(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item id"})
	}

	deletedEntries, err := h.catalogService.DeleteFood(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Food item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete food item"})
	}
	return c.JSON(fiber.Map{"deleted_entries": deletedEntries})
}

func (h *CatalogHandler) ListWorkouts(c *fiber.Ctx) error {
	items, err := h.catalogService.ListWorkouts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workout items"})
	}

	items = services.Search(items, c.Query("search"), func(item models.WorkoutItem) []string {
		return []string{item.Name}
	})
	if c.Query("sort") == "name" {
		services.SortByKey(items, c.Query("dir"), func(item models.WorkoutItem) string {
			return item.Name
		})
	}

	return c.JSON(fiber.Map{"workout_items": items})
}

func (h *CatalogHandler) CreateWorkout(c *fiber.Ctx) error {
	var req workoutItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateWorkoutItemRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	item, err := h.catalogService.CreateWorkout(c.Context(), repository.WorkoutItemInput{
		Name:            req.Name,
		CaloriesPerHour: req.CaloriesPerHour,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create workout item"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"workout_item": item})
}

func (h *CatalogHandler) UpdateWorkout(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item id"})
	}

	var req workoutItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateWorkoutItemRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	item, err := h.catalogService.UpdateWorkout(c.Context(), id, repository.WorkoutItemInput{
		Name:            req.Name,
		CaloriesPerHour: req.CaloriesPerHour,
	})
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update workout item"})
	}
	return c.JSON(fiber.Map{"workout_item": item})
}

func (h *CatalogHandler) DeleteWorkout(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item id"})
	}

	deletedEntries, err := h.catalogService.DeleteWorkout(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete workout item"})
	}
	return c.JSON(fiber.Map{"deleted_entries": deletedEntries})
}

func foodItemInput(req foodItemRequest) repository.FoodItemInput {
	return repository.FoodItemInput{
		Name:          req.Name,
		Calories:      req.Calories,
		Proteins:      req.Proteins,
		Fats:          req.Fats,
		Carbohydrates: req.Carbohydrates,
	}
}
