package repository

import (
	"context"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/jackc/pgx/v5"
)

type WorkoutItemRepository struct {
	db DBTX
}

func NewWorkoutItemRepository(db DBTX) *WorkoutItemRepository {
	return &WorkoutItemRepository{db: db}
}

type WorkoutItemInput struct {
	Name            string
	CaloriesPerHour float64
}

func (r *WorkoutItemRepository) Create(ctx context.Context, input WorkoutItemInput) (*models.WorkoutItem, error) {
	query := `
		INSERT INTO workout_items (name, calories_per_hour)
		VALUES ($1, $2)
		RETURNING id, name, calories_per_hour, created_at, updated_at
	`
	var item models.WorkoutItem
	err := r.db.QueryRow(ctx, query, input.Name, input.CaloriesPerHour).
		Scan(&item.ID, &item.Name, &item.CaloriesPerHour, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *WorkoutItemRepository) Update(ctx context.Context, id int64, input WorkoutItemInput) (*models.WorkoutItem, error) {
	query := `
		UPDATE workout_items
		SET name = $1, calories_per_hour = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, calories_per_hour, created_at, updated_at
	`
	var item models.WorkoutItem
	err := r.db.QueryRow(ctx, query, input.Name, input.CaloriesPerHour, id).
		Scan(&item.ID, &item.Name, &item.CaloriesPerHour, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *WorkoutItemRepository) GetByID(ctx context.Context, id int64) (*models.WorkoutItem, error) {
	query := `
		SELECT id, name, calories_per_hour, created_at, updated_at
		FROM workout_items
		WHERE id = $1
	`
	var item models.WorkoutItem
	err := r.db.QueryRow(ctx, query, id).
		Scan(&item.ID, &item.Name, &item.CaloriesPerHour, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *WorkoutItemRepository) List(ctx context.Context) ([]models.WorkoutItem, error) {
	query := `
		SELECT id, name, calories_per_hour, created_at, updated_at
		FROM workout_items
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.WorkoutItem
	for rows.Next() {
		var item models.WorkoutItem
		if err := rows.Scan(&item.ID, &item.Name, &item.CaloriesPerHour, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *WorkoutItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM workout_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *WorkoutItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workout_items`).Scan(&count)
	return count, err
}
