package repository

import (
	"context"
	"time"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
)

type WorkoutEntryRepository struct {
	db DBTX
}

func NewWorkoutEntryRepository(db DBTX) *WorkoutEntryRepository {
	return &WorkoutEntryRepository{db: db}
}

func (r *WorkoutEntryRepository) Create(ctx context.Context, userID, workoutItemID int64, durationMinutes, caloriesBurned int, at time.Time) (*models.WorkoutEntry, error) {
	query := `
		INSERT INTO workout_entries (user_id, workout_item_id, duration_minutes, calories_burned_estimated, date_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, workout_item_id, duration_minutes, calories_burned_estimated, date_time
	`
	var entry models.WorkoutEntry
	err := r.db.QueryRow(ctx, query, userID, workoutItemID, durationMinutes, caloriesBurned, at).
		Scan(&entry.ID, &entry.UserID, &entry.WorkoutItemID, &entry.DurationMinutes, &entry.CaloriesBurnedEstimated, &entry.DateTime)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *WorkoutEntryRepository) ListBurnedSince(ctx context.Context, userID int64, since time.Time) ([]models.BurnedEntry, error) {
	query := `
		SELECT calories_burned_estimated, date_time
		FROM workout_entries
		WHERE user_id = $1 AND date_time >= $2
		ORDER BY date_time ASC
	`
	rows, err := r.db.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.BurnedEntry
	for rows.Next() {
		var entry models.BurnedEntry
		if err := rows.Scan(&entry.CaloriesBurnedEstimated, &entry.DateTime); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *WorkoutEntryRepository) DeleteByWorkoutItemID(ctx context.Context, workoutItemID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM workout_entries WHERE workout_item_id = $1`, workoutItemID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *WorkoutEntryRepository) DeleteByUserID(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM workout_entries WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
