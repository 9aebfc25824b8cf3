package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type roleSelector interface {
	SelectRole(ctx context.Context, userID int64, role string) error
}

type profileSaver interface {
	SaveProfile(ctx context.Context, userID int64, input services.ProfileInput) (*models.UserProfile, error)
	GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error)
}

type applicationSubmitter interface {
	Submit(ctx context.Context, userID int64, credentials string) (*models.TrainerApplication, error)
}

type OnboardingHandler struct {
	stateService       roleSelector
	profileService     profileSaver
	applicationService applicationSubmitter
}

func NewOnboardingHandler(
	stateService roleSelector,
	profileService profileSaver,
	applicationService applicationSubmitter,
) *OnboardingHandler {
	return &OnboardingHandler{
		stateService:       stateService,
		profileService:     profileService,
		applicationService: applicationService,
	}
}

type selectRoleRequest struct {
	Role string `json:"role"`
}

type profileRequest struct {
	Age      int     `json:"age"`
	WeightKG float64 `json:"weight_kg"`
	HeightCM float64 `json:"height_cm"`
	Gender   string  `json:"gender"`
	Goal     string  `json:"goal"`
}

type applicationRequest struct {
	CredentialsDetails string `json:"credentials_details"`
}

func (h *OnboardingHandler) SelectRole(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req selectRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.stateService.SelectRole(c.Context(), userID, req.Role); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
		case errors.Is(err, services.ErrRoleAlreadySet):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Role already set"})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to set role"})
		}
	}

	return c.JSON(fiber.Map{"role": req.Role})
}

func (h *OnboardingHandler) SaveProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateProfileRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	profile, err := h.profileService.SaveProfile(c.Context(), userID, services.ProfileInput{
		Age:      req.Age,
		WeightKG: req.WeightKG,
		HeightCM: req.HeightCM,
		Gender:   req.Gender,
		Goal:     req.Goal,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save profile"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func (h *OnboardingHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.profileService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func (h *OnboardingHandler) SubmitApplication(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req applicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.CredentialsDetails) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "credentials_details is required"})
	}

	app, err := h.applicationService.Submit(c.Context(), userID, strings.TrimSpace(req.CredentialsDetails))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotTrainer):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
		case errors.Is(err, services.ErrApplicationOpen):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Application already submitted"})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit application"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"application": app})
}
