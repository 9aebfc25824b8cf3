package repository

import (
	"context"
	"time"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
)

type FoodEntryRepository struct {
	db DBTX
}

func NewFoodEntryRepository(db DBTX) *FoodEntryRepository {
	return &FoodEntryRepository{db: db}
}

func (r *FoodEntryRepository) Create(ctx context.Context, userID, foodItemID int64, quantityGrams float64, at time.Time) (*models.FoodEntry, error) {
	query := `
		INSERT INTO food_entries (user_id, food_item_id, quantity_grams, date_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, food_item_id, quantity_grams, date_time
	`
	var entry models.FoodEntry
	err := r.db.QueryRow(ctx, query, userID, foodItemID, quantityGrams, at).
		Scan(&entry.ID, &entry.UserID, &entry.FoodItemID, &entry.QuantityGrams, &entry.DateTime)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListConsumedSince joins each entry with its item's calories per 100 g so
// callers can total what was eaten without a second round trip.
func (r *FoodEntryRepository) ListConsumedSince(ctx context.Context, userID int64, since time.Time) ([]models.ConsumedEntry, error) {
	query := `
		SELECT e.quantity_grams, f.calories, e.date_time
		FROM food_entries e
		JOIN food_items f ON f.id = e.food_item_id
		WHERE e.user_id = $1 AND e.date_time >= $2
		ORDER BY e.date_time ASC
	`
	rows, err := r.db.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ConsumedEntry
	for rows.Next() {
		var entry models.ConsumedEntry
		if err := rows.Scan(&entry.QuantityGrams, &entry.ItemCalories, &entry.DateTime); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *FoodEntryRepository) DeleteByFoodItemID(ctx context.Context, foodItemID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM food_entries WHERE food_item_id = $1`, foodItemID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *FoodEntryRepository) DeleteByUserID(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM food_entries WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
