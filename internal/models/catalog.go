package models

import "time"

type FoodItem struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Calories      float64   `json:"calories"`
	Proteins      float64   `json:"proteins"`
	Fats          float64   `json:"fats"`
	Carbohydrates float64   `json:"carbohydrates"`
	CreatedBy     *int64    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type WorkoutItem struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	CaloriesPerHour float64   `json:"calories_per_hour"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
