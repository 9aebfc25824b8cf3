package handlers

import (
	"strings"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
)

var allowedGenders = map[string]struct{}{
	models.GenderMale:   {},
	models.GenderFemale: {},
}

var allowedGoals = map[string]struct{}{
	models.GoalLoseWeight: {},
	models.GoalMaintain:   {},
	models.GoalGainMuscle: {},
}

func validateProfileRequest(req profileRequest) string {
	if req.Age <= 0 {
		return "age must be greater than 0"
	}
	if req.WeightKG <= 0 {
		return "weight_kg must be greater than 0"
	}
	if req.HeightCM <= 0 {
		return "height_cm must be greater than 0"
	}
	if _, ok := allowedGenders[req.Gender]; !ok {
		return "gender must be male or female"
	}
	if _, ok := allowedGoals[req.Goal]; !ok {
		return "goal must be lose_weight, maintain or gain_muscle"
	}
	return ""
}

func validateFoodItemRequest(req foodItemRequest) string {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	if req.Calories < 0 || req.Proteins < 0 || req.Fats < 0 || req.Carbohydrates < 0 {
		return "nutrition values must be 0 or greater"
	}
	return ""
}

func validateWorkoutItemRequest(req workoutItemRequest) string {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	if req.CaloriesPerHour < 0 {
		return "calories_per_hour must be 0 or greater"
	}
	return ""
}
