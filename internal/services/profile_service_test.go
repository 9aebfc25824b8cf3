package services

import (
	"context"
	"testing"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/repository"
)

type stubProfileStore struct {
	profile    *models.UserProfile
	getErr     error
	lastUserID int64
	lastInput  repository.UpsertProfileInput
}

func (s *stubProfileStore) GetByUserID(_ context.Context, userID int64) (*models.UserProfile, error) {
	s.lastUserID = userID
	return s.profile, s.getErr
}

func (s *stubProfileStore) Upsert(_ context.Context, userID int64, input repository.UpsertProfileInput) (*models.UserProfile, error) {
	s.lastUserID = userID
	s.lastInput = input
	return &models.UserProfile{
		UserID:            userID,
		Age:               input.Age,
		WeightKG:          input.WeightKG,
		HeightCM:          input.HeightCM,
		Gender:            input.Gender,
		Goal:              input.Goal,
		BMR:               input.BMR,
		DailyCaloriesGoal: input.DailyCaloriesGoal,
	}, nil
}

func TestCalculateGoalsMaintain(t *testing.T) {
	bmr, daily := CalculateGoals(ProfileInput{
		Age:      25,
		WeightKG: 70,
		HeightCM: 175,
		Gender:   models.GenderMale,
		Goal:     models.GoalMaintain,
	})

	// 700 + 1093.75 - 125 + 5 = 1673.75, rounded to 1674
	if bmr != 1674 {
		t.Fatalf("expected bmr 1674, got %d", bmr)
	}
	// round(1673.75 * 1.375) = 2301
	if daily != 2301 {
		t.Fatalf("expected daily calories 2301, got %d", daily)
	}
}

func TestCalculateGoalsAdjustsForGoal(t *testing.T) {
	base := ProfileInput{Age: 25, WeightKG: 70, HeightCM: 175, Gender: models.GenderMale}

	lose := base
	lose.Goal = models.GoalLoseWeight
	if _, daily := CalculateGoals(lose); daily != 1801 {
		t.Fatalf("expected 1801 for lose_weight, got %d", daily)
	}

	gain := base
	gain.Goal = models.GoalGainMuscle
	if _, daily := CalculateGoals(gain); daily != 2701 {
		t.Fatalf("expected 2701 for gain_muscle, got %d", daily)
	}
}

func TestCalculateGoalsFemaleOffset(t *testing.T) {
	male := ProfileInput{Age: 30, WeightKG: 60, HeightCM: 165, Gender: models.GenderMale, Goal: models.GoalMaintain}
	female := male
	female.Gender = models.GenderFemale

	maleBMR, _ := CalculateGoals(male)
	femaleBMR, _ := CalculateGoals(female)

	if maleBMR-femaleBMR != 166 {
		t.Fatalf("expected 166 kcal gender gap, got %d", maleBMR-femaleBMR)
	}
}

func TestSaveProfilePersistsDerivedFields(t *testing.T) {
	store := &stubProfileStore{}
	service := NewProfileService(store)

	profile, err := service.SaveProfile(context.Background(), 42, ProfileInput{
		Age:      25,
		WeightKG: 70,
		HeightCM: 175,
		Gender:   models.GenderMale,
		Goal:     models.GoalLoseWeight,
	})
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	if store.lastUserID != 42 {
		t.Fatalf("expected upsert for user 42, got %d", store.lastUserID)
	}
	if store.lastInput.BMR != 1674 || store.lastInput.DailyCaloriesGoal != 1801 {
		t.Fatalf("unexpected derived fields: %+v", store.lastInput)
	}
	if profile.DailyCaloriesGoal != 1801 {
		t.Fatalf("expected returned goal 1801, got %d", profile.DailyCaloriesGoal)
	}
}
