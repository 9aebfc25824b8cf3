package services

import (
	"context"
	"errors"
	"math"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

const activityMultiplier = 1.375

type profileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
	Upsert(ctx context.Context, userID int64, input repository.UpsertProfileInput) (*models.UserProfile, error)
}

type ProfileService struct {
	profileRepo profileStore
}

func NewProfileService(profileRepo profileStore) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

type ProfileInput struct {
	Age      int
	WeightKG float64
	HeightCM float64
	Gender   string
	Goal     string
}

// CalculateGoals derives BMR (Mifflin-St Jeor) and a daily calorie target
// with a fixed 1.375 activity multiplier, adjusted for the stated goal.
func CalculateGoals(input ProfileInput) (bmr int, dailyCalories int) {
	raw := 10*input.WeightKG + 6.25*input.HeightCM - 5*float64(input.Age)
	if input.Gender == models.GenderMale {
		raw += 5
	} else {
		raw -= 161
	}

	dailyCalories = int(math.Round(raw * activityMultiplier))
	switch input.Goal {
	case models.GoalLoseWeight:
		dailyCalories -= 500
	case models.GoalGainMuscle:
		dailyCalories += 400
	}

	return int(math.Round(raw)), dailyCalories
}

// SaveProfile computes the derived fields and writes the profile as one
// idempotent upsert keyed by user id.
func (s *ProfileService) SaveProfile(ctx context.Context, userID int64, input ProfileInput) (*models.UserProfile, error) {
	bmr, dailyCalories := CalculateGoals(input)
	return s.profileRepo.Upsert(ctx, userID, repository.UpsertProfileInput{
		Age:               input.Age,
		WeightKG:          input.WeightKG,
		HeightCM:          input.HeightCM,
		Gender:            input.Gender,
		Goal:              input.Goal,
		BMR:               bmr,
		DailyCaloriesGoal: dailyCalories,
	})
}

func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}
