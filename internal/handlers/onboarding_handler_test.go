package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/services"
	"github.com/gofiber/fiber/v2"
)

type stubRoleSelector struct {
	err        error
	lastUserID int64
	lastRole   string
}

func (s *stubRoleSelector) SelectRole(_ context.Context, userID int64, role string) error {
	s.lastUserID = userID
	s.lastRole = role
	return s.err
}

type stubProfileSaver struct {
	profile   *models.UserProfile
	saveErr   error
	getErr    error
	lastInput services.ProfileInput
}

func (s *stubProfileSaver) SaveProfile(_ context.Context, _ int64, input services.ProfileInput) (*models.UserProfile, error) {
	s.lastInput = input
	return s.profile, s.saveErr
}

func (s *stubProfileSaver) GetProfile(_ context.Context, _ int64) (*models.UserProfile, error) {
	return s.profile, s.getErr
}

type stubApplicationSubmitter struct {
	app             *models.TrainerApplication
	err             error
	lastCredentials string
}

func (s *stubApplicationSubmitter) Submit(_ context.Context, _ int64, credentials string) (*models.TrainerApplication, error) {
	s.lastCredentials = credentials
	return s.app, s.err
}

func newOnboardingApp(selector *stubRoleSelector, saver *stubProfileSaver, submitter *stubApplicationSubmitter) *fiber.App {
	handler := NewOnboardingHandler(selector, saver, submitter)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "42")
		return c.Next()
	})
	app.Post("/api/v1/session/role", handler.SelectRole)
	app.Post("/api/v1/profile", handler.SaveProfile)
	app.Get("/api/v1/profile", handler.GetProfile)
	app.Post("/api/v1/applications", handler.SubmitApplication)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSelectRolePersistsChoice(t *testing.T) {
	selector := &stubRoleSelector{}
	app := newOnboardingApp(selector, &stubProfileSaver{}, &stubApplicationSubmitter{})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/session/role", `{"role":"trainer"}`))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if selector.lastUserID != 42 || selector.lastRole != models.RoleTrainer {
		t.Fatalf("unexpected forwarding: %d %q", selector.lastUserID, selector.lastRole)
	}
}

func TestSelectRoleConflictWhenAlreadySet(t *testing.T) {
	selector := &stubRoleSelector{err: services.ErrRoleAlreadySet}
	app := newOnboardingApp(selector, &stubProfileSaver{}, &stubApplicationSubmitter{})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/session/role", `{"role":"customer"}`))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestSaveProfileReturnsDerivedGoals(t *testing.T) {
	saver := &stubProfileSaver{
		profile: &models.UserProfile{UserID: 42, BMR: 1674, DailyCaloriesGoal: 2301},
	}
	app := newOnboardingApp(&stubRoleSelector{}, saver, &stubApplicationSubmitter{})

	body := `{"age":25,"weight_kg":70,"height_cm":175,"gender":"male","goal":"maintain"}`
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/profile", body))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if saver.lastInput.Gender != models.GenderMale || saver.lastInput.WeightKG != 70 {
		t.Fatalf("unexpected input forwarding: %+v", saver.lastInput)
	}

	var payload struct {
		Profile struct {
			BMR               int `json:"bmr"`
			DailyCaloriesGoal int `json:"daily_calories_goal"`
		} `json:"profile"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if payload.Profile.BMR != 1674 || payload.Profile.DailyCaloriesGoal != 2301 {
		t.Fatalf("unexpected derived goals: %+v", payload.Profile)
	}
}

func TestSaveProfileValidatesBody(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"non-positive age", `{"age":0,"weight_kg":70,"height_cm":175,"gender":"male","goal":"maintain"}`},
		{"unknown gender", `{"age":25,"weight_kg":70,"height_cm":175,"gender":"robot","goal":"maintain"}`},
		{"unknown goal", `{"age":25,"weight_kg":70,"height_cm":175,"gender":"male","goal":"bulk"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			saver := &stubProfileSaver{}
			app := newOnboardingApp(&stubRoleSelector{}, saver, &stubApplicationSubmitter{})

			resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/profile", tc.body))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestSubmitApplicationRequiresCredentials(t *testing.T) {
	app := newOnboardingApp(&stubRoleSelector{}, &stubProfileSaver{}, &stubApplicationSubmitter{})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/applications", `{"credentials_details":"   "}`))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSubmitApplicationCreatesAndMapsConflicts(t *testing.T) {
	submitter := &stubApplicationSubmitter{
		app: &models.TrainerApplication{ID: 9, UserID: 42, Status: models.ApplicationPending},
	}
	app := newOnboardingApp(&stubRoleSelector{}, &stubProfileSaver{}, submitter)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/applications", `{"credentials_details":"  NASM certified  "}`))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if submitter.lastCredentials != "NASM certified" {
		t.Fatalf("expected trimmed credentials, got %q", submitter.lastCredentials)
	}

	submitter.err = services.ErrApplicationOpen
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/v1/applications", `{"credentials_details":"again"}`))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}

	submitter.err = services.ErrNotTrainer
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/v1/applications", `{"credentials_details":"wrong role"}`))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}
