package services

import (
	"context"
	"errors"
	"sort"

	"finbot/internal/config"
	"finbot/internal/dto"
	apperrors "finbot/internal/errors"
	"finbot/internal/models"
	"finbot/internal/repositories"

	"github.com/google/uuid"
)

type userService struct {
	userRepo   repositories.UserRepositoryInterface
	categories CategoryServiceInterface
	events     LedgerLoggerInterface
	metrics    MetricsRecorderInterface
	defaults   config.LedgerConfig
}

// NewUserService creates the onboarding service. New users get the
// configured currency and timezone.
func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	categories CategoryServiceInterface,
	events LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
	defaults config.LedgerConfig,
) UserServiceInterface {
	return &userService{
		userRepo:   userRepo,
		categories: categories,
		events:     events,
		metrics:    metrics,
		defaults:   defaults,
	}
}

// GetOrCreateUser registers the user on first contact and back-fills default
// categories on every call. The bool reports whether the user was created.
func (s *userService) GetOrCreateUser(ctx context.Context, telegramID int64, profile dto.UserProfile) (*models.User, bool, error) {
	if telegramID == 0 {
		return nil, false, apperrors.NewValidation(apperrors.ValidationRequiredField, "telegram id is required")
	}
	if err := validateRequest(profile, apperrors.ValidationInvalidFormat, nil); err != nil {
		return nil, false, err
	}

	user, created, err := s.findOrRegister(ctx, telegramID, profile)
	if err != nil {
		return nil, false, err
	}

	if _, err := s.categories.EnsureDefaultCategories(ctx, user.ID); err != nil {
		return nil, false, err
	}

	return user, created, nil
}

func (s *userService) findOrRegister(ctx context.Context, telegramID int64, profile dto.UserProfile) (*models.User, bool, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, false, apperrors.WrapStore(err, "failed to look up user")
	}

	user = &models.User{
		TelegramID:           telegramID,
		Username:             profile.Username,
		FirstName:            profile.FirstName,
		LastName:             profile.LastName,
		Currency:             s.defaults.DefaultCurrency,
		Timezone:             s.defaults.DefaultTimezone,
		NotificationsEnabled: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if !errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, false, apperrors.WrapStore(err, "failed to register user")
		}

		// a concurrent first contact registered the same id
		existing, err := s.userRepo.GetByTelegramID(ctx, telegramID)
		if err != nil {
			return nil, false, userError(err, "failed to re-read user after conflict")
		}
		return existing, false, nil
	}

	s.events.LogUserRegistered(ctx, user.ID, telegramID)
	s.metrics.IncrementCounter("user_registered", nil)

	return user, true, nil
}

func (s *userService) GetUserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, userError(err, "failed to load user")
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID uuid.UUID, req dto.UpdateUserRequest) (*models.User, error) {
	if err := validateRequest(req, apperrors.ValidationGeneral, map[string]apperrors.ErrorCode{
		"timezone":      apperrors.UserInvalidTimezone,
		"daily_limit":   apperrors.UserInvalidLimit,
		"monthly_limit": apperrors.UserInvalidLimit,
	}); err != nil {
		s.events.LogValidationFailure(ctx, "update_user", err.Error())
		return nil, err
	}

	fields := req.Fields()
	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(ctx, userID, fields); err != nil {
			return nil, userError(err, "failed to update user")
		}

		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		s.events.LogUserUpdated(ctx, userID, names)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, userError(err, "failed to load user")
	}
	return user, nil
}

func userError(err error, message string) error {
	if errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.NewNotFound(apperrors.UserNotFound)
	}
	return apperrors.WrapStore(err, message)
}
