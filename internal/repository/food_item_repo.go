package repository

import (
	"context"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/jackc/pgx/v5"
)

type FoodItemRepository struct {
	db DBTX
}

func NewFoodItemRepository(db DBTX) *FoodItemRepository {
	return &FoodItemRepository{db: db}
}

type FoodItemInput struct {
	Name          string
	Calories      float64
	Proteins      float64
	Fats          float64
	Carbohydrates float64
}

func (r *FoodItemRepository) Create(ctx context.Context, input FoodItemInput, createdBy *int64) (*models.FoodItem, error) {
	query := `
		INSERT INTO food_items (name, calories, proteins, fats, carbohydrates, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, calories, proteins, fats, carbohydrates, created_by, created_at, updated_at
	`
	var item models.FoodItem
	err := r.db.QueryRow(ctx, query, input.Name, input.Calories, input.Proteins, input.Fats, input.Carbohydrates, createdBy).
		Scan(&item.ID, &item.Name, &item.Calories, &item.Proteins, &item.Fats, &item.Carbohydrates, &item.CreatedBy, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *FoodItemRepository) Update(ctx context.Context, id int64, input FoodItemInput) (*models.FoodItem, error) {
	query := `
		UPDATE food_items
		SET name = $1, calories = $2, proteins = $3, fats = $4, carbohydrates = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id, name, calories, proteins, fats, carbohydrates, created_by, created_at, updated_at
	`
	var item models.FoodItem
	err := r.db.QueryRow(ctx, query, input.Name, input.Calories, input.Proteins, input.Fats, input.Carbohydrates, id).
		Scan(&item.ID, &item.Name, &item.Calories, &item.Proteins, &item.Fats, &item.Carbohydrates, &item.CreatedBy, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *FoodItemRepository) GetByID(ctx context.Context, id int64) (*models.FoodItem, error) {
	query := `
		SELECT id, name, calories, proteins, fats, carbohydrates, created_by, created_at, updated_at
		FROM food_items
		WHERE id = $1
	`
	var item models.FoodItem
	err := r.db.QueryRow(ctx, query, id).
		Scan(&item.ID, &item.Name, &item.Calories, &item.Proteins, &item.Fats, &item.Carbohydrates, &item.CreatedBy, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *FoodItemRepository) List(ctx context.Context) ([]models.FoodItem, error) {
	query := `
		SELECT id, name, calories, proteins, fats, carbohydrates, created_by, created_at, updated_at
		FROM food_items
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.FoodItem
	for rows.Next() {
		var item models.FoodItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Calories, &item.Proteins, &item.Fats, &item.Carbohydrates, &item.CreatedBy, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *FoodItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM food_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *FoodItemRepository) DeleteByCreatedBy(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM food_items WHERE created_by = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *FoodItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM food_items`).Scan(&count)
	return count, err
}
