package routes

import (
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/config"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/handlers"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/middleware"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/repository"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewUserProfileRepository(db)
	applicationRepo := repository.NewTrainerApplicationRepository(db)
	foodRepo := repository.NewFoodItemRepository(db)
	workoutRepo := repository.NewWorkoutItemRepository(db)
	foodEntryRepo := repository.NewFoodEntryRepository(db)
	workoutEntryRepo := repository.NewWorkoutEntryRepository(db)

	stateService := services.NewSessionStateService(userRepo, profileRepo, applicationRepo)
	profileService := services.NewProfileService(profileRepo)
	applicationService := services.NewApplicationService(applicationRepo, userRepo)
	catalogService := services.NewCatalogService(foodRepo, workoutRepo, foodEntryRepo, workoutEntryRepo)
	adminService := services.NewAdminService(userRepo, profileRepo, applicationRepo, foodRepo, workoutRepo, foodEntryRepo, workoutEntryRepo)
	trackingService := services.NewTrackingService(foodRepo, workoutRepo, foodEntryRepo, workoutEntryRepo, profileRepo)

	authHandler := handlers.NewAuthHandler(userRepo, stateService, cfg.JWTSecret)
	onboardingHandler := handlers.NewOnboardingHandler(stateService, profileService, applicationService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	adminUserHandler := handlers.NewAdminUserHandler(adminService)
	trackingHandler := handlers.NewTrackingHandler(trackingService)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	session := authProtected.Group("/session")
	session.Post("/role", onboardingHandler.SelectRole)

	authProtected.Post("/profile", onboardingHandler.SaveProfile)
	authProtected.Get("/profile", onboardingHandler.GetProfile)
	authProtected.Post("/applications", onboardingHandler.SubmitApplication)

	entries := authProtected.Group("/entries")
	entries.Post("/food", trackingHandler.LogFood)
	entries.Post("/workout", trackingHandler.LogWorkout)

	authProtected.Get("/dashboard/summary", trackingHandler.GetDailySummary)
	authProtected.Get("/analytics/weekly", trackingHandler.GetWeeklyAnalytics)

	admin := authProtected.Group("/admin", middleware.AdminRequired(userRepo))
	admin.Get("/stats", adminUserHandler.GetStats)

	admin.Get("/applications", applicationHandler.ListApplications)
	admin.Post("/applications/:id/decision", applicationHandler.DecideApplication)

	admin.Get("/users", adminUserHandler.ListUsers)
	admin.Put("/users/:id", adminUserHandler.UpdateUser)
	admin.Delete("/users/:id", adminUserHandler.DeleteUser)

	admin.Get("/foods", catalogHandler.ListFoods)
	admin.Post("/foods", catalogHandler.CreateFood)
	admin.Put("/foods/:id", catalogHandler.UpdateFood)
	admin.Delete("/foods/:id", catalogHandler.DeleteFood)

	admin.Get("/workouts", catalogHandler.ListWorkouts)
	admin.Post("/workouts", catalogHandler.CreateWorkout)
	admin.Put("/workouts/:id", catalogHandler.UpdateWorkout)
	admin.Delete("/workouts/:id", catalogHandler.DeleteWorkout)
}
