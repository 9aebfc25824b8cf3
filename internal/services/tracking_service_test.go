package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/jackc/pgx/v5"
)

type stubFoodReader struct {
	item *models.FoodItem
}

func (s *stubFoodReader) GetByID(_ context.Context, _ int64) (*models.FoodItem, error) {
	if s.item == nil {
		return nil, pgx.ErrNoRows
	}
	return s.item, nil
}

type stubWorkoutReader struct {
	item *models.WorkoutItem
}

func (s *stubWorkoutReader) GetByID(_ context.Context, _ int64) (*models.WorkoutItem, error) {
	if s.item == nil {
		return nil, pgx.ErrNoRows
	}
	return s.item, nil
}

type stubFoodEntryLog struct {
	consumed  []models.ConsumedEntry
	lastSince time.Time
	created   *models.FoodEntry
}

func (s *stubFoodEntryLog) Create(_ context.Context, userID, foodItemID int64, quantityGrams float64, at time.Time) (*models.FoodEntry, error) {
	s.created = &models.FoodEntry{ID: 1, UserID: userID, FoodItemID: foodItemID, QuantityGrams: quantityGrams, DateTime: at}
	return s.created, nil
}

func (s *stubFoodEntryLog) ListConsumedSince(_ context.Context, _ int64, since time.Time) ([]models.ConsumedEntry, error) {
	s.lastSince = since
	return s.consumed, nil
}

type stubWorkoutEntryLog struct {
	burned  []models.BurnedEntry
	created *models.WorkoutEntry
}

func (s *stubWorkoutEntryLog) Create(_ context.Context, userID, workoutItemID int64, durationMinutes, caloriesBurned int, at time.Time) (*models.WorkoutEntry, error) {
	s.created = &models.WorkoutEntry{
		ID:                      1,
		UserID:                  userID,
		WorkoutItemID:           workoutItemID,
		DurationMinutes:         durationMinutes,
		CaloriesBurnedEstimated: caloriesBurned,
		DateTime:                at,
	}
	return s.created, nil
}

func (s *stubWorkoutEntryLog) ListBurnedSince(_ context.Context, _ int64, _ time.Time) ([]models.BurnedEntry, error) {
	return s.burned, nil
}

func newTrackingService(foods *stubFoodReader, workouts *stubWorkoutReader, foodEntries *stubFoodEntryLog, workoutEntries *stubWorkoutEntryLog, profiles *stubProfileStore, now time.Time) *TrackingService {
	service := NewTrackingService(foods, workouts, foodEntries, workoutEntries, profiles)
	service.now = func() time.Time { return now }
	return service
}

func TestLogWorkoutScalesBurnByDuration(t *testing.T) {
	workoutEntries := &stubWorkoutEntryLog{}
	service := newTrackingService(
		&stubFoodReader{},
		&stubWorkoutReader{item: &models.WorkoutItem{ID: 2, CaloriesPerHour: 600}},
		&stubFoodEntryLog{},
		workoutEntries,
		&stubProfileStore{},
		time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
	)

	entry, err := service.LogWorkout(context.Background(), 1, 2, 45)
	if err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}
	if entry.CaloriesBurnedEstimated != 450 {
		t.Fatalf("expected 450 kcal for 45 min at 600/h, got %d", entry.CaloriesBurnedEstimated)
	}

	service.workoutRepo = &stubWorkoutReader{item: &models.WorkoutItem{ID: 2, CaloriesPerHour: 100}}
	entry, err = service.LogWorkout(context.Background(), 1, 2, 50)
	if err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}
	if entry.CaloriesBurnedEstimated != 83 {
		t.Fatalf("expected 83 kcal for 50 min at 100/h, got %d", entry.CaloriesBurnedEstimated)
	}
}

func TestLogFoodValidatesInput(t *testing.T) {
	service := newTrackingService(
		&stubFoodReader{},
		&stubWorkoutReader{},
		&stubFoodEntryLog{},
		&stubWorkoutEntryLog{},
		&stubProfileStore{},
		time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
	)

	if _, err := service.LogFood(context.Background(), 1, 2, 0); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry for zero grams, got %v", err)
	}
	if _, err := service.LogFood(context.Background(), 1, 2, 150); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound for missing item, got %v", err)
	}
}

func TestDailySummaryAggregatesSinceMidnight(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	foodEntries := &stubFoodEntryLog{consumed: []models.ConsumedEntry{
		{QuantityGrams: 200, ItemCalories: 150, DateTime: now},
		{QuantityGrams: 50, ItemCalories: 400, DateTime: now},
	}}
	workoutEntries := &stubWorkoutEntryLog{burned: []models.BurnedEntry{
		{CaloriesBurnedEstimated: 300, DateTime: now},
	}}
	profiles := &stubProfileStore{profile: &models.UserProfile{UserID: 1, DailyCaloriesGoal: 2000}}
	service := newTrackingService(&stubFoodReader{}, &stubWorkoutReader{}, foodEntries, workoutEntries, profiles, now)

	summary, err := service.DailySummary(context.Background(), 1)
	if err != nil {
		t.Fatalf("DailySummary: %v", err)
	}

	if summary.ConsumedCalories != 500 {
		t.Fatalf("expected 500 consumed (300 + 200), got %d", summary.ConsumedCalories)
	}
	if summary.BurnedCalories != 300 {
		t.Fatalf("expected 300 burned, got %d", summary.BurnedCalories)
	}
	if summary.RemainingCalories != 1800 {
		t.Fatalf("expected remaining 2000 - 500 + 300 = 1800, got %d", summary.RemainingCalories)
	}

	wantSince := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !foodEntries.lastSince.Equal(wantSince) {
		t.Fatalf("expected entries fetched since %v, got %v", wantSince, foodEntries.lastSince)
	}
}

func TestDailySummaryRequiresProfile(t *testing.T) {
	profiles := &stubProfileStore{getErr: pgx.ErrNoRows}
	service := newTrackingService(&stubFoodReader{}, &stubWorkoutReader{}, &stubFoodEntryLog{}, &stubWorkoutEntryLog{}, profiles, time.Now())

	if _, err := service.DailySummary(context.Background(), 1); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestWeeklyAnalyticsBucketsSevenDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	foodEntries := &stubFoodEntryLog{consumed: []models.ConsumedEntry{
		{QuantityGrams: 100, ItemCalories: 250, DateTime: time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)},
		{QuantityGrams: 100, ItemCalories: 500, DateTime: now},
	}}
	workoutEntries := &stubWorkoutEntryLog{burned: []models.BurnedEntry{
		{CaloriesBurnedEstimated: 120, DateTime: time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC)},
		{CaloriesBurnedEstimated: 90, DateTime: time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC)},
	}}
	profiles := &stubProfileStore{profile: &models.UserProfile{UserID: 1, DailyCaloriesGoal: 2000}}
	service := newTrackingService(&stubFoodReader{}, &stubWorkoutReader{}, foodEntries, workoutEntries, profiles, now)

	points, err := service.WeeklyAnalytics(context.Background(), 1)
	if err != nil {
		t.Fatalf("WeeklyAnalytics: %v", err)
	}

	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	if points[0].Date != "2026-03-04" || points[6].Date != "2026-03-10" {
		t.Fatalf("expected oldest-first window 2026-03-04..2026-03-10, got %s..%s", points[0].Date, points[6].Date)
	}

	if points[0].Consumed != 250 || points[0].Burned != 120 {
		t.Fatalf("expected 250/120 on the first day, got %d/%d", points[0].Consumed, points[0].Burned)
	}
	if points[6].Consumed != 500 {
		t.Fatalf("expected 500 consumed today, got %d", points[6].Consumed)
	}

	// The 2026-03-03 burn falls outside the window and must not leak in.
	total := 0
	for _, p := range points {
		total += p.Burned
	}
	if total != 120 {
		t.Fatalf("expected out-of-window entry dropped, total burned %d", total)
	}

	for _, p := range points[1:6] {
		if p.Consumed != 0 && p.Date != "2026-03-10" {
			t.Fatalf("expected empty middle days, got %+v", p)
		}
	}
}
