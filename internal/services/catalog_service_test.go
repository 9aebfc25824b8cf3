package services

import (
	"context"
	"errors"
	"testing"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/NureKavresievMykyta/fatbeaches-web/internal/repository"
	"github.com/jackc/pgx/v5"
)

type stubFoodItemStore struct {
	items     []models.FoodItem
	deletedID int64
	deleteErr error
}

func (s *stubFoodItemStore) Create(_ context.Context, input repository.FoodItemInput, createdBy *int64) (*models.FoodItem, error) {
	return &models.FoodItem{ID: 1, Name: input.Name, CreatedBy: createdBy}, nil
}

func (s *stubFoodItemStore) Update(_ context.Context, id int64, input repository.FoodItemInput) (*models.FoodItem, error) {
	return &models.FoodItem{ID: id, Name: input.Name}, nil
}

func (s *stubFoodItemStore) List(_ context.Context) ([]models.FoodItem, error) {
	return s.items, nil
}

func (s *stubFoodItemStore) Delete(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedID = id
	return nil
}

type stubWorkoutItemStore struct {
	deletedID int64
}

func (s *stubWorkoutItemStore) Create(_ context.Context, input repository.WorkoutItemInput) (*models.WorkoutItem, error) {
	return &models.WorkoutItem{ID: 1, Name: input.Name}, nil
}

func (s *stubWorkoutItemStore) Update(_ context.Context, id int64, input repository.WorkoutItemInput) (*models.WorkoutItem, error) {
	return &models.WorkoutItem{ID: id, Name: input.Name}, nil
}

func (s *stubWorkoutItemStore) List(_ context.Context) ([]models.WorkoutItem, error) {
	return nil, nil
}

func (s *stubWorkoutItemStore) Delete(_ context.Context, id int64) error {
	s.deletedID = id
	return nil
}

type stubFoodEntryCascader struct {
	deleted int64
	err     error
	calls   int
}

func (s *stubFoodEntryCascader) DeleteByFoodItemID(_ context.Context, _ int64) (int64, error) {
	s.calls++
	return s.deleted, s.err
}

type stubWorkoutEntryCascader struct {
	deleted int64
	calls   int
}

func (s *stubWorkoutEntryCascader) DeleteByWorkoutItemID(_ context.Context, _ int64) (int64, error) {
	s.calls++
	return s.deleted, nil
}

func TestDeleteFoodCascadesEntriesFirst(t *testing.T) {
	foods := &stubFoodItemStore{}
	entries := &stubFoodEntryCascader{deleted: 3}
	service := NewCatalogService(foods, &stubWorkoutItemStore{}, entries, &stubWorkoutEntryCascader{})

	deleted, err := service.DeleteFood(context.Background(), 9)
	if err != nil {
		t.Fatalf("DeleteFood: %v", err)
	}

	if entries.calls != 1 || deleted != 3 {
		t.Fatalf("expected 3 cascaded entries in one call, got %d in %d calls", deleted, entries.calls)
	}
	if foods.deletedID != 9 {
		t.Fatalf("expected food item 9 deleted, got %d", foods.deletedID)
	}
}

func TestDeleteFoodWithNoReferences(t *testing.T) {
	foods := &stubFoodItemStore{}
	entries := &stubFoodEntryCascader{deleted: 0}
	service := NewCatalogService(foods, &stubWorkoutItemStore{}, entries, &stubWorkoutEntryCascader{})

	deleted, err := service.DeleteFood(context.Background(), 9)
	if err != nil {
		t.Fatalf("DeleteFood: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("expected zero entry deletions, got %d", deleted)
	}
	if foods.deletedID != 9 {
		t.Fatalf("expected parent delete to proceed, got %d", foods.deletedID)
	}
}

func TestDeleteFoodProceedsWhenCascadeFails(t *testing.T) {
	foods := &stubFoodItemStore{}
	entries := &stubFoodEntryCascader{err: errors.New("timeout")}
	service := NewCatalogService(foods, &stubWorkoutItemStore{}, entries, &stubWorkoutEntryCascader{})

	if _, err := service.DeleteFood(context.Background(), 9); err != nil {
		t.Fatalf("expected cascade failure to not block parent delete, got %v", err)
	}
	if foods.deletedID != 9 {
		t.Fatalf("expected parent delete attempted, got %d", foods.deletedID)
	}
}

func TestDeleteFoodMapsMissingItem(t *testing.T) {
	foods := &stubFoodItemStore{deleteErr: pgx.ErrNoRows}
	service := NewCatalogService(foods, &stubWorkoutItemStore{}, &stubFoodEntryCascader{}, &stubWorkoutEntryCascader{})

	if _, err := service.DeleteFood(context.Background(), 404); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteWorkoutCascadesEntries(t *testing.T) {
	workouts := &stubWorkoutItemStore{}
	entries := &stubWorkoutEntryCascader{deleted: 2}
	service := NewCatalogService(&stubFoodItemStore{}, workouts, &stubFoodEntryCascader{}, entries)

	deleted, err := service.DeleteWorkout(context.Background(), 5)
	if err != nil {
		t.Fatalf("DeleteWorkout: %v", err)
	}
	if deleted != 2 || entries.calls != 1 {
		t.Fatalf("expected 2 cascaded entries, got %d in %d calls", deleted, entries.calls)
	}
	if workouts.deletedID != 5 {
		t.Fatalf("expected workout item 5 deleted, got %d", workouts.deletedID)
	}
}
