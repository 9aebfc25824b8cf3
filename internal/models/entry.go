package models

import "time"

type FoodEntry struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	FoodItemID    int64     `json:"food_item_id"`
	QuantityGrams float64   `json:"quantity_grams"`
	DateTime      time.Time `json:"date_time"`
}

type WorkoutEntry struct {
	ID                      int64     `json:"id"`
	UserID                  int64     `json:"user_id"`
	WorkoutItemID           int64     `json:"workout_item_id"`
	DurationMinutes         int       `json:"duration_minutes"`
	CaloriesBurnedEstimated int       `json:"calories_burned_estimated"`
	DateTime                time.Time `json:"date_time"`
}

// ConsumedEntry is a food entry joined with the referenced item's calories
// per 100 g, enough to compute what the entry contributed.
type ConsumedEntry struct {
	QuantityGrams float64   `json:"quantity_grams"`
	ItemCalories  float64   `json:"item_calories"`
	DateTime      time.Time `json:"date_time"`
}

type BurnedEntry struct {
	CaloriesBurnedEstimated int       `json:"calories_burned_estimated"`
	DateTime                time.Time `json:"date_time"`
}
