package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/jackc/pgx/v5"
)

var ErrInvalidEntry = errors.New("invalid entry")

const weeklyDays = 7

type foodItemReader interface {
	GetByID(ctx context.Context, id int64) (*models.FoodItem, error)
}

type workoutItemReader interface {
	GetByID(ctx context.Context, id int64) (*models.WorkoutItem, error)
}

type foodEntryLog interface {
	Create(ctx context.Context, userID, foodItemID int64, quantityGrams float64, at time.Time) (*models.FoodEntry, error)
	ListConsumedSince(ctx context.Context, userID int64, since time.Time) ([]models.ConsumedEntry, error)
}

type workoutEntryLog interface {
	Create(ctx context.Context, userID, workoutItemID int64, durationMinutes, caloriesBurned int, at time.Time) (*models.WorkoutEntry, error)
	ListBurnedSince(ctx context.Context, userID int64, since time.Time) ([]models.BurnedEntry, error)
}

type goalReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
}

// TrackingService logs what a customer ate and trained and aggregates it
// into the dashboard summary and the 7-day analytics series.
type TrackingService struct {
	foodRepo         foodItemReader
	workoutRepo      workoutItemReader
	foodEntryRepo    foodEntryLog
	workoutEntryRepo workoutEntryLog
	profileRepo      goalReader
	now              func() time.Time
}

func NewTrackingService(
	foodRepo foodItemReader,
	workoutRepo workoutItemReader,
	foodEntryRepo foodEntryLog,
	workoutEntryRepo workoutEntryLog,
	profileRepo goalReader,
) *TrackingService {
	return &TrackingService{
		foodRepo:         foodRepo,
		workoutRepo:      workoutRepo,
		foodEntryRepo:    foodEntryRepo,
		workoutEntryRepo: workoutEntryRepo,
		profileRepo:      profileRepo,
		now:              time.Now,
	}
}

func (s *TrackingService) LogFood(ctx context.Context, userID, foodItemID int64, quantityGrams float64) (*models.FoodEntry, error) {
	if foodItemID <= 0 || quantityGrams <= 0 {
		return nil, ErrInvalidEntry
	}
	if _, err := s.foodRepo.GetByID(ctx, foodItemID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return s.foodEntryRepo.Create(ctx, userID, foodItemID, quantityGrams, s.now().UTC())
}

// LogWorkout estimates burned calories from the item's hourly burn rate
// before persisting the entry.
func (s *TrackingService) LogWorkout(ctx context.Context, userID, workoutItemID int64, durationMinutes int) (*models.WorkoutEntry, error) {
	if workoutItemID <= 0 || durationMinutes <= 0 {
		return nil, ErrInvalidEntry
	}
	item, err := s.workoutRepo.GetByID(ctx, workoutItemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	burned := int(math.Round(item.CaloriesPerHour * float64(durationMinutes) / 60))
	return s.workoutEntryRepo.Create(ctx, userID, workoutItemID, durationMinutes, burned, s.now().UTC())
}

func (s *TrackingService) DailySummary(ctx context.Context, userID int64) (*models.DailySummary, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	consumedEntries, err := s.foodEntryRepo.ListConsumedSince(ctx, userID, dayStart)
	if err != nil {
		return nil, err
	}
	burnedEntries, err := s.workoutEntryRepo.ListBurnedSince(ctx, userID, dayStart)
	if err != nil {
		return nil, err
	}

	consumed := 0
	for _, entry := range consumedEntries {
		consumed += entryCalories(entry)
	}
	burned := 0
	for _, entry := range burnedEntries {
		burned += entry.CaloriesBurnedEstimated
	}

	return &models.DailySummary{
		ConsumedCalories:  consumed,
		BurnedCalories:    burned,
		DailyCaloriesGoal: profile.DailyCaloriesGoal,
		RemainingCalories: profile.DailyCaloriesGoal - consumed + burned,
	}, nil
}

// WeeklyAnalytics buckets the last seven days of consumed and burned
// calories per day, oldest day first. Days without entries stay zero.
func (s *TrackingService) WeeklyAnalytics(ctx context.Context, userID int64) ([]models.WeeklyPoint, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	since := today.AddDate(0, 0, -(weeklyDays - 1))

	points := make([]models.WeeklyPoint, weeklyDays)
	index := make(map[string]int, weeklyDays)
	for i := 0; i < weeklyDays; i++ {
		day := since.AddDate(0, 0, i).Format("2006-01-02")
		points[i] = models.WeeklyPoint{Date: day}
		index[day] = i
	}

	consumedEntries, err := s.foodEntryRepo.ListConsumedSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	for _, entry := range consumedEntries {
		if i, ok := index[entry.DateTime.UTC().Format("2006-01-02")]; ok {
			points[i].Consumed += entryCalories(entry)
		}
	}

	burnedEntries, err := s.workoutEntryRepo.ListBurnedSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	for _, entry := range burnedEntries {
		if i, ok := index[entry.DateTime.UTC().Format("2006-01-02")]; ok {
			points[i].Burned += entry.CaloriesBurnedEstimated
		}
	}

	return points, nil
}

// entryCalories scales the item's calories per 100 g by the logged grams.
func entryCalories(entry models.ConsumedEntry) int {
	return int(math.Round(entry.ItemCalories * entry.QuantityGrams / 100))
}
