package handlers

import (
	"context"
	"errors"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/services"
	"github.com/gofiber/fiber/v2"
)

type applicationReviewer interface {
	List(ctx context.Context, filter string) ([]models.ApplicationWithApplicant, error)
	Decide(ctx context.Context, applicationID int64, decision string) (*services.DecisionResult, error)
}

// ApplicationHandler is the admin review surface for trainer applications.
type ApplicationHandler struct {
	applicationService applicationReviewer
}

func NewApplicationHandler(applicationService applicationReviewer) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

type decisionRequest struct {
	Decision string `json:"decision"`
}

func (h *ApplicationHandler) ListApplications(c *fiber.Ctx) error {
	apps, err := h.applicationService.List(c.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidFilter) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status filter"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch applications"})
	}

	apps = services.Search(apps, c.Query("search"), func(app models.ApplicationWithApplicant) []string {
		return []string{app.ApplicantEmail, app.ApplicantDisplayName}
	})
	if c.Query("sort") == "name" {
		services.SortByKey(apps, c.Query("dir"), func(app models.ApplicationWithApplicant) string {
			return app.ApplicantDisplayName
		})
	}

	return c.JSON(fiber.Map{"applications": apps})
}

func (h *ApplicationHandler) DecideApplication(c *fiber.Ctx) error {
	applicationID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application id"})
	}

	var req decisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.applicationService.Decide(c.Context(), applicationID, req.Decision)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDecision):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Decision must be approved or rejected"})
		case errors.Is(err, services.ErrApplicationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to decide application"})
		}
	}

	return c.JSON(result)
}
