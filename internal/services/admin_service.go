package services

import (
	"context"
	"errors"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/NureKavresievMykyta/fatbeaches-web/pkg/logger"
	"github.com/jackc/pgx/v5"
)

var ErrInvalidStatus = errors.New("invalid status")

type adminUserStore interface {
	List(ctx context.Context) ([]models.User, error)
	UpdateRoleAndStatus(ctx context.Context, userID int64, role, status string) (*models.User, error)
	Delete(ctx context.Context, userID int64) error
	Count(ctx context.Context) (int, error)
}

type userOwnedCascader interface {
	DeleteByUserID(ctx context.Context, userID int64) (int64, error)
}

type foodOwnershipCascader interface {
	DeleteByCreatedBy(ctx context.Context, userID int64) (int64, error)
	Count(ctx context.Context) (int, error)
}

type workoutCounter interface {
	Count(ctx context.Context) (int, error)
}

type applicationCounterCascader interface {
	CountByStatus(ctx context.Context, status string) (int, error)
	DeleteByUserID(ctx context.Context, userID int64) (int64, error)
}

type AdminService struct {
	userRepo         adminUserStore
	profileRepo      userOwnedCascader
	applicationRepo  applicationCounterCascader
	foodRepo         foodOwnershipCascader
	workoutRepo      workoutCounter
	foodEntryRepo    userOwnedCascader
	workoutEntryRepo userOwnedCascader
}

func NewAdminService(
	userRepo adminUserStore,
	profileRepo userOwnedCascader,
	applicationRepo applicationCounterCascader,
	foodRepo foodOwnershipCascader,
	workoutRepo workoutCounter,
	foodEntryRepo userOwnedCascader,
	workoutEntryRepo userOwnedCascader,
) *AdminService {
	return &AdminService{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		applicationRepo:  applicationRepo,
		foodRepo:         foodRepo,
		workoutRepo:      workoutRepo,
		foodEntryRepo:    foodEntryRepo,
		workoutEntryRepo: workoutEntryRepo,
	}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *AdminService) UpdateUser(ctx context.Context, userID int64, role, status string) (*models.User, error) {
	switch role {
	case models.RoleCustomer, models.RoleTrainer, models.RoleAdmin:
	default:
		return nil, ErrInvalidRole
	}
	switch status {
	case models.StatusActive, models.StatusBanned:
	default:
		return nil, ErrInvalidStatus
	}

	user, err := s.userRepo.UpdateRoleAndStatus(ctx, userID, role, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the rows the user owns before the user itself: log
// entries, catalog items they created, their trainer application, and their
// profile. A dependent delete that fails is logged as a warning and the
// user delete is still attempted.
func (s *AdminService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.Get()
	warn := log.Warn

	if _, err := s.foodEntryRepo.DeleteByUserID(ctx, userID); err != nil {
		warn().Err(err).Int64("user_id", userID).Msg("could not delete user food entries")
	}
	if _, err := s.workoutEntryRepo.DeleteByUserID(ctx, userID); err != nil {
		warn().Err(err).Int64("user_id", userID).Msg("could not delete user workout entries")
	}
	if _, err := s.foodRepo.DeleteByCreatedBy(ctx, userID); err != nil {
		warn().Err(err).Int64("user_id", userID).Msg("could not delete user food items")
	}
	if _, err := s.applicationRepo.DeleteByUserID(ctx, userID); err != nil {
		warn().Err(err).Int64("user_id", userID).Msg("could not delete user trainer application")
	}
	if _, err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		warn().Err(err).Int64("user_id", userID).Msg("could not delete user profile")
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	foods, err := s.foodRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	workouts, err := s.workoutRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.applicationRepo.CountByStatus(ctx, models.ApplicationPending)
	if err != nil {
		return nil, err
	}

	return &models.AdminStats{
		Users:               users,
		FoodItems:           foods,
		WorkoutItems:        workouts,
		PendingApplications: pending,
	}, nil
}
