package repository

import (
	"context"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
)

type UserProfileRepository struct {
	db DBTX
}

func NewUserProfileRepository(db DBTX) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

func (r *UserProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	query := `
		SELECT id, user_id, age, weight_kg, height_cm, gender, goal, bmr, daily_calories_goal, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`
	var profile models.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Age,
		&profile.WeightKG,
		&profile.HeightCM,
		&profile.Gender,
		&profile.Goal,
		&profile.BMR,
		&profile.DailyCaloriesGoal,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

type UpsertProfileInput struct {
	Age               int
	WeightKG          float64
	HeightCM          float64
	Gender            string
	Goal              string
	BMR               int
	DailyCaloriesGoal int
}

// Upsert writes the profile keyed by user_id in a single statement: an
// update when a row exists, an insert otherwise.
func (r *UserProfileRepository) Upsert(ctx context.Context, userID int64, input UpsertProfileInput) (*models.UserProfile, error) {
	query := `
		INSERT INTO user_profiles (user_id, age, weight_kg, height_cm, gender, goal, bmr, daily_calories_goal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE
		SET age = EXCLUDED.age,
			weight_kg = EXCLUDED.weight_kg,
			height_cm = EXCLUDED.height_cm,
			gender = EXCLUDED.gender,
			goal = EXCLUDED.goal,
			bmr = EXCLUDED.bmr,
			daily_calories_goal = EXCLUDED.daily_calories_goal,
			updated_at = NOW()
		RETURNING id, user_id, age, weight_kg, height_cm, gender, goal, bmr, daily_calories_goal, created_at, updated_at
	`
	var profile models.UserProfile
	err := r.db.QueryRow(ctx, query,
		userID,
		input.Age,
		input.WeightKG,
		input.HeightCM,
		input.Gender,
		input.Goal,
		input.BMR,
		input.DailyCaloriesGoal,
	).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Age,
		&profile.WeightKG,
		&profile.HeightCM,
		&profile.Gender,
		&profile.Goal,
		&profile.BMR,
		&profile.DailyCaloriesGoal,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *UserProfileRepository) DeleteByUserID(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
