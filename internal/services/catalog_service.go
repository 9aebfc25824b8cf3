package services

import (
	"context"
	"errors"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/repository"
	"github.com/NureKavresievMykyta/fatbeaches-web/pkg/logger"
	"github.com/jackc/pgx/v5"
)

var ErrItemNotFound = errors.New("item not found")

type foodItemStore interface {
	Create(ctx context.Context, input repository.FoodItemInput, createdBy *int64) (*models.FoodItem, error)
	Update(ctx context.Context, id int64, input repository.FoodItemInput) (*models.FoodItem, error)
	List(ctx context.Context) ([]models.FoodItem, error)
	Delete(ctx context.Context, id int64) error
}

type workoutItemStore interface {
	Create(ctx context.Context, input repository.WorkoutItemInput) (*models.WorkoutItem, error)
	Update(ctx context.Context, id int64, input repository.WorkoutItemInput) (*models.WorkoutItem, error)
	List(ctx context.Context) ([]models.WorkoutItem, error)
	Delete(ctx context.Context, id int64) error
}

type foodEntryCascader interface {
	DeleteByFoodItemID(ctx context.Context, foodItemID int64) (int64, error)
}

type workoutEntryCascader interface {
	DeleteByWorkoutItemID(ctx context.Context, workoutItemID int64) (int64, error)
}

// CatalogService manages the admin-owned food and workout reference rows.
// Deletes clear dependent log entries first so no entry is left pointing at
// a missing item; a failed dependent delete is logged and the parent delete
// still proceeds.
type CatalogService struct {
	foodRepo         foodItemStore
	workoutRepo      workoutItemStore
	foodEntryRepo    foodEntryCascader
	workoutEntryRepo workoutEntryCascader
}

func NewCatalogService(
	foodRepo foodItemStore,
	workoutRepo workoutItemStore,
	foodEntryRepo foodEntryCascader,
	workoutEntryRepo workoutEntryCascader,
) *CatalogService {
	return &CatalogService{
		foodRepo:         foodRepo,
		workoutRepo:      workoutRepo,
		foodEntryRepo:    foodEntryRepo,
		workoutEntryRepo: workoutEntryRepo,
	}
}

func (s *CatalogService) ListFoods(ctx context.Context) ([]models.FoodItem, error) {
	return s.foodRepo.List(ctx)
}

func (s *CatalogService) CreateFood(ctx context.Context, input repository.FoodItemInput, createdBy *int64) (*models.FoodItem, error) {
	return s.foodRepo.Create(ctx, input, createdBy)
}

func (s *CatalogService) UpdateFood(ctx context.Context, id int64, input repository.FoodItemInput) (*models.FoodItem, error) {
	item, err := s.foodRepo.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// DeleteFood removes dependent food entries first, then the item. Returns
// how many entries went with it.
func (s *CatalogService) DeleteFood(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.foodEntryRepo.DeleteByFoodItemID(ctx, id)
	if err != nil {
		log := logger.Get()
		log.Warn().Err(err).Int64("food_item_id", id).
			Msg("could not delete related food entries")
	}

	if err := s.foodRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deleted, ErrItemNotFound
		}
		return deleted, err
	}
	return deleted, nil
}

func (s *CatalogService) ListWorkouts(ctx context.Context) ([]models.WorkoutItem, error) {
	return s.workoutRepo.List(ctx)
}

func (s *CatalogService) CreateWorkout(ctx context.Context, input repository.WorkoutItemInput) (*models.WorkoutItem, error) {
	return s.workoutRepo.Create(ctx, input)
}

func (s *CatalogService) UpdateWorkout(ctx context.Context, id int64, input repository.WorkoutItemInput) (*models.WorkoutItem, error) {
	item, err := s.workoutRepo.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) DeleteWorkout(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.workoutEntryRepo.DeleteByWorkoutItemID(ctx, id)
	if err != nil {
		log := logger.Get()
		log.Warn().Err(err).Int64("workout_item_id", id).
			Msg("could not delete related workout entries")
	}

	if err := s.workoutRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deleted, ErrItemNotFound
		}
		return deleted, err
	}
	return deleted, nil
}
