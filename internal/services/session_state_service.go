package services

import (
	"context"
	"errors"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
	"github.com/jackc/pgx/v5"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrRoleAlreadySet = errors.New("role already set")
	ErrInvalidRole    = errors.New("invalid role")
)

type stateUserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateRole(ctx context.Context, userID int64, role string) error
}

type stateProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
}

type stateApplicationReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.TrainerApplication, error)
}

// SessionStateService classifies which screen a signed-in user belongs on.
// The state is re-derived from persisted rows on every call, so a reload
// always lands on the same screen without any client-held state.
type SessionStateService struct {
	userRepo        stateUserStore
	profileRepo     stateProfileReader
	applicationRepo stateApplicationReader
}

func NewSessionStateService(
	userRepo stateUserStore,
	profileRepo stateProfileReader,
	applicationRepo stateApplicationReader,
) *SessionStateService {
	return &SessionStateService{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		applicationRepo: applicationRepo,
	}
}

// Resolve queries the role first and then fetches exactly one of
// {profile, application} depending on it, never both.
func (s *SessionStateService) Resolve(ctx context.Context, userID int64) (*models.SessionState, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	state := &models.SessionState{User: *user}

	switch user.Role {
	case models.RoleAdmin:
		state.Screen = models.ScreenAdminDashboard

	case models.RoleTrainer:
		app, err := s.applicationRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				state.Screen = models.ScreenTrainerVerification
				return state, nil
			}
			return nil, err
		}
		state.Application = app
		switch app.Status {
		case models.ApplicationApproved:
			state.Screen = models.ScreenTrainerDashboard
		case models.ApplicationRejected:
			state.Screen = models.ScreenTrainerRejected
		default:
			state.Screen = models.ScreenTrainerPending
		}

	case models.RoleCustomer:
		profile, err := s.profileRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				state.Screen = models.ScreenProfileSetup
				return state, nil
			}
			return nil, err
		}
		state.Profile = profile
		state.Screen = models.ScreenCustomerDashboard

	default:
		state.Screen = models.ScreenRoleSelection
	}

	return state, nil
}

// SelectRole persists the one-time customer/trainer choice. Role
// transitions out of an already-chosen role happen only through admin
// action, so anything other than unset -> customer|trainer is refused.
func (s *SessionStateService) SelectRole(ctx context.Context, userID int64, role string) error {
	if role != models.RoleCustomer && role != models.RoleTrainer {
		return ErrInvalidRole
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	if user.Role != models.RoleUnset {
		return ErrRoleAlreadySet
	}

	return s.userRepo.UpdateRole(ctx, userID, role)
}
