package repository

import (
	"context"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
)

type TrainerApplicationRepository struct {
	db DBTX
}

func NewTrainerApplicationRepository(db DBTX) *TrainerApplicationRepository {
	return &TrainerApplicationRepository{db: db}
}

func (r *TrainerApplicationRepository) Create(ctx context.Context, userID int64, credentials string) (*models.TrainerApplication, error) {
	query := `
		INSERT INTO trainer_applications (user_id, credentials_details, status)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, credentials_details, status, submitted_at
	`
	var app models.TrainerApplication
	err := r.db.QueryRow(ctx, query, userID, credentials, models.ApplicationPending).
		Scan(&app.ID, &app.UserID, &app.CredentialsDetails, &app.Status, &app.SubmittedAt)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *TrainerApplicationRepository) GetByID(ctx context.Context, id int64) (*models.TrainerApplication, error) {
	query := `
		SELECT id, user_id, credentials_details, status, submitted_at
		FROM trainer_applications
		WHERE id = $1
	`
	var app models.TrainerApplication
	err := r.db.QueryRow(ctx, query, id).
		Scan(&app.ID, &app.UserID, &app.CredentialsDetails, &app.Status, &app.SubmittedAt)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *TrainerApplicationRepository) GetByUserID(ctx context.Context, userID int64) (*models.TrainerApplication, error) {
	query := `
		SELECT id, user_id, credentials_details, status, submitted_at
		FROM trainer_applications
		WHERE user_id = $1
		ORDER BY submitted_at DESC
		LIMIT 1
	`
	var app models.TrainerApplication
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&app.ID, &app.UserID, &app.CredentialsDetails, &app.Status, &app.SubmittedAt)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// List returns applications newest first, joined with the applicant row.
// An empty status means no status predicate.
func (r *TrainerApplicationRepository) List(ctx context.Context, status string) ([]models.ApplicationWithApplicant, error) {
	query := `
		SELECT a.id, a.user_id, a.credentials_details, a.status, a.submitted_at, u.email, u.display_name
		FROM trainer_applications a
		JOIN users u ON u.id = a.user_id
		WHERE $1 = '' OR a.status = $1
		ORDER BY a.submitted_at DESC
	`
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.ApplicationWithApplicant
	for rows.Next() {
		var app models.ApplicationWithApplicant
		if err := rows.Scan(
			&app.ID,
			&app.UserID,
			&app.CredentialsDetails,
			&app.Status,
			&app.SubmittedAt,
			&app.ApplicantEmail,
			&app.ApplicantDisplayName,
		); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *TrainerApplicationRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.TrainerApplication, error) {
	query := `
		UPDATE trainer_applications
		SET status = $1
		WHERE id = $2
		RETURNING id, user_id, credentials_details, status, submitted_at
	`
	var app models.TrainerApplication
	err := r.db.QueryRow(ctx, query, status, id).
		Scan(&app.ID, &app.UserID, &app.CredentialsDetails, &app.Status, &app.SubmittedAt)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Reopen flips a rejected application back to pending with fresh
// credentials, keeping the one-lifecycle-per-user invariant.
func (r *TrainerApplicationRepository) Reopen(ctx context.Context, id int64, credentials string) (*models.TrainerApplication, error) {
	query := `
		UPDATE trainer_applications
		SET credentials_details = $1, status = $2, submitted_at = NOW()
		WHERE id = $3
		RETURNING id, user_id, credentials_details, status, submitted_at
	`
	var app models.TrainerApplication
	err := r.db.QueryRow(ctx, query, credentials, models.ApplicationPending, id).
		Scan(&app.ID, &app.UserID, &app.CredentialsDetails, &app.Status, &app.SubmittedAt)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *TrainerApplicationRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM trainer_applications WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *TrainerApplicationRepository) DeleteByUserID(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM trainer_applications WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
