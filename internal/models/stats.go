package models

type AdminStats struct {
	Users               int `json:"users"`
	FoodItems           int `json:"food_items"`
	WorkoutItems        int `json:"workout_items"`
	PendingApplications int `json:"pending_applications"`
}

type DailySummary struct {
	ConsumedCalories  int `json:"consumed_calories"`
	BurnedCalories    int `json:"burned_calories"`
	DailyCaloriesGoal int `json:"daily_calories_goal"`
	RemainingCalories int `json:"remaining_calories"`
}

// WeeklyPoint is one day's bucket in the 7-day analytics series.
type WeeklyPoint struct {
	Date     string `json:"date"`
	Consumed int    `json:"consumed"`
	Burned   int    `json:"burned"`
}
