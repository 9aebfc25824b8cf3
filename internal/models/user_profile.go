package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	GoalLoseWeight = "lose_weight"
	GoalMaintain   = "maintain"
	GoalGainMuscle = "gain_muscle"
)

type UserProfile struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	Age               int       `json:"age"`
	WeightKG          float64   `json:"weight_kg"`
	HeightCM          float64   `json:"height_cm"`
	Gender            string    `json:"gender"`
	Goal              string    `json:"goal"`
	BMR               int       `json:"bmr"`
	DailyCaloriesGoal int       `json:"daily_calories_goal"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
