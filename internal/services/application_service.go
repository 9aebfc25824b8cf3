package services

import (
	"context"
	"errors"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/NureKavresievMykyta/fatbeaches-web/pkg/logger"
	"github.com/jackc/pgx/v5"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationOpen     = errors.New("application already open")
	ErrInvalidDecision     = errors.New("invalid decision")
	ErrInvalidFilter       = errors.New("invalid filter")
	ErrNotTrainer          = errors.New("not a trainer")
)

type applicationStore interface {
	Create(ctx context.Context, userID int64, credentials string) (*models.TrainerApplication, error)
	GetByID(ctx context.Context, id int64) (*models.TrainerApplication, error)
	GetByUserID(ctx context.Context, userID int64) (*models.TrainerApplication, error)
	List(ctx context.Context, status string) ([]models.ApplicationWithApplicant, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.TrainerApplication, error)
	Reopen(ctx context.Context, id int64, credentials string) (*models.TrainerApplication, error)
}

type applicantRoleStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateRole(ctx context.Context, userID int64, role string) error
}

type ApplicationService struct {
	applicationRepo applicationStore
	userRepo        applicantRoleStore
}

func NewApplicationService(applicationRepo applicationStore, userRepo applicantRoleStore) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
	}
}

// Submit files the trainer application for a user who picked the trainer
// role. A user has at most one application lifecycle: a rejected one is
// reopened in place, a pending or approved one refuses a duplicate.
func (s *ApplicationService) Submit(ctx context.Context, userID int64, credentials string) (*models.TrainerApplication, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Role != models.RoleTrainer {
		return nil, ErrNotTrainer
	}

	existing, err := s.applicationRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s.applicationRepo.Create(ctx, userID, credentials)
		}
		return nil, err
	}
	if existing.Status == models.ApplicationRejected {
		return s.applicationRepo.Reopen(ctx, existing.ID, credentials)
	}
	return nil, ErrApplicationOpen
}

// List returns applications newest first. The default filter is pending;
// "all" removes the predicate.
func (s *ApplicationService) List(ctx context.Context, filter string) ([]models.ApplicationWithApplicant, error) {
	switch filter {
	case "":
		filter = models.ApplicationPending
	case models.ApplicationPending, models.ApplicationApproved, models.ApplicationRejected:
	case "all":
		filter = ""
	default:
		return nil, ErrInvalidFilter
	}
	return s.applicationRepo.List(ctx, filter)
}

// DecisionResult reports what the two-step decision actually did. Warning
// is set when the application was approved but the role change failed, a
// state the operator has to see rather than a success or a crash.
type DecisionResult struct {
	Application *models.TrainerApplication `json:"application"`
	RoleUpdated bool                       `json:"role_updated"`
	Warning     string                     `json:"warning,omitempty"`
}

// Decide updates the application status, then on approval promotes the
// linked user to trainer. The two steps are not transactional on purpose:
// a failed second step leaves an approved application with an unchanged
// role, which is reported, not hidden. Re-approving an already-approved
// application re-asserts the role and is not an error.
func (s *ApplicationService) Decide(ctx context.Context, applicationID int64, decision string) (*DecisionResult, error) {
	if decision != models.ApplicationApproved && decision != models.ApplicationRejected {
		return nil, ErrInvalidDecision
	}

	app, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	if app.Status != decision {
		app, err = s.applicationRepo.UpdateStatus(ctx, applicationID, decision)
		if err != nil {
			return nil, err
		}
	}

	result := &DecisionResult{Application: app}
	if decision == models.ApplicationApproved {
		if err := s.userRepo.UpdateRole(ctx, app.UserID, models.RoleTrainer); err != nil {
			result.Warning = "application approved but the applicant role was not updated"
			log := logger.Get()
			log.Warn().
				Err(err).
				Int64("application_id", app.ID).
				Int64("user_id", app.UserID).
				Msg("approved application left with unchanged role")
		} else {
			result.RoleUpdated = true
		}
	}

	return result, nil
}
