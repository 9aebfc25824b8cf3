package handlers

import (
	"context"
	"errors"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/services"
	"github.com/gofiber/fiber/v2"
)

type adminUserManager interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID int64, role, status string) (*models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	Stats(ctx context.Context) (*models.AdminStats, error)
}

type AdminUserHandler struct {
	adminService adminUserManager
}

func NewAdminUserHandler(adminService adminUserManager) *AdminUserHandler {
	return &AdminUserHandler{adminService: adminService}
}

type updateUserRequest struct {
	Role   string `json:"role"`
	Status string `json:"status"`
}

func (h *AdminUserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.adminService.ListUsers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	users = services.Search(users, c.Query("search"), func(user models.User) []string {
		return []string{user.Email, user.DisplayName}
	})
	if c.Query("sort") == "name" {
		services.SortByKey(users, c.Query("dir"), func(user models.User) string {
			return user.DisplayName
		})
	}

	return c.JSON(fiber.Map{"users": users})
}

func (h *AdminUserHandler) UpdateUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := h.adminService.UpdateUser(c.Context(), userID, req.Role, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
		}
	}

	return c.JSON(fiber.Map{"user": user})
}

func (h *AdminUserHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	if err := h.adminService.DeleteUser(c.Context(), userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AdminUserHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.adminService.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch stats"})
	}
	return c.JSON(fiber.Map{"stats": stats})
}
