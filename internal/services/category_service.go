package services

import (
	"context"
	"errors"
	"strings"

	"finbot/internal/dto"
	apperrors "finbot/internal/errors"
	"finbot/internal/models"
	"finbot/internal/repositories"

	"github.com/google/uuid"
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	events       LedgerLoggerInterface
	metrics      MetricsRecorderInterface
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	events LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		events:       events,
		metrics:      metrics,
	}
}

func (s *categoryService) GetUserCategories(ctx context.Context, userID uuid.UUID, isIncome *bool) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetForUser(ctx, userID, isIncome)
	if err != nil {
		return nil, apperrors.WrapStore(err, "failed to load user categories")
	}
	return categories, nil
}

func (s *categoryService) GetUserCategory(ctx context.Context, userID, categoryID uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetUserCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, categoryError(err, "failed to load user category")
	}
	return category, nil
}

// FindOrCreateCategory relies on the unique name constraint: when a concurrent
// caller inserts the same name first, the existing row is re-read and returned.
func (s *categoryService) FindOrCreateCategory(ctx context.Context, name, icon string, isIncome bool) (*models.Category, error) {
	name = strings.TrimSpace(name)
	icon = strings.TrimSpace(icon)

	if err := models.ValidateCategoryName(name); err != nil {
		return nil, apperrors.NewValidation(apperrors.CategoryInvalidName, err.Error())
	}

	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, apperrors.WrapStore(err, "failed to look up category")
	}

	category := &models.Category{
		Name:     name,
		Icon:     icon,
		IsIncome: isIncome,
		IsActive: true,
	}
	if err := category.Validate(); err != nil {
		return nil, apperrors.NewValidation(apperrors.CategoryInvalidIcon, err.Error())
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if !errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, apperrors.WrapStore(err, "failed to create category")
		}

		existing, err := s.categoryRepo.GetByName(ctx, name)
		if err != nil {
			return nil, categoryError(err, "failed to re-read category after conflict")
		}
		return existing, nil
	}

	s.events.LogCategoryCreated(ctx, category.ID, category.Name, category.IsIncome)
	s.metrics.IncrementCounter("category_created", nil)

	return category, nil
}

// AddCategoryToUser returns false when the user already holds the category.
func (s *categoryService) AddCategoryToUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error) {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return false, categoryError(err, "failed to load category")
	}

	added, err := s.categoryRepo.AddToUser(ctx, userID, categoryID)
	if err != nil {
		return false, apperrors.WrapStore(err, "failed to add category to user")
	}

	if added {
		s.events.LogCategoryMembershipChanged(ctx, userID, categoryID, true)
		s.metrics.IncrementCounter("category_membership", map[string]string{"operation": "add"})
	}

	return added, nil
}

// RemoveCategoryFromUser drops the membership edge; the shared category row stays.
func (s *categoryService) RemoveCategoryFromUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error) {
	removed, err := s.categoryRepo.RemoveFromUser(ctx, userID, categoryID)
	if err != nil {
		return false, apperrors.WrapStore(err, "failed to remove category from user")
	}

	if removed {
		s.events.LogCategoryMembershipChanged(ctx, userID, categoryID, false)
		s.metrics.IncrementCounter("category_membership", map[string]string{"operation": "remove"})
	}

	return removed, nil
}

// EnsureDefaultCategories is idempotent and cheap enough to run on every interaction.
func (s *categoryService) EnsureDefaultCategories(ctx context.Context, userID uuid.UUID) (int64, error) {
	added, err := s.categoryRepo.AddMissingDefaults(ctx, userID)
	if err != nil {
		return 0, apperrors.WrapStore(err, "failed to ensure default categories")
	}

	if added > 0 {
		s.events.LogDefaultCategoriesAttached(ctx, userID, added)
	}

	return added, nil
}

// AddCustomCategory finds or creates the named category and adopts it for the user.
func (s *categoryService) AddCustomCategory(ctx context.Context, userID uuid.UUID, req dto.CategoryRequest) (*models.Category, bool, error) {
	if err := validateRequest(req, apperrors.CategoryInvalidName, map[string]apperrors.ErrorCode{
		"name": apperrors.CategoryInvalidName,
		"icon": apperrors.CategoryInvalidIcon,
	}); err != nil {
		s.events.LogValidationFailure(ctx, "add_custom_category", err.Error())
		return nil, false, err
	}

	category, err := s.FindOrCreateCategory(ctx, req.Name, req.Icon, req.IsIncome)
	if err != nil {
		return nil, false, err
	}

	added, err := s.AddCategoryToUser(ctx, userID, category.ID)
	if err != nil {
		return nil, false, err
	}

	return category, added, nil
}

func (s *categoryService) SetCategoryActive(ctx context.Context, categoryID uuid.UUID, active bool) error {
	if err := s.categoryRepo.SetActive(ctx, categoryID, active); err != nil {
		return categoryError(err, "failed to update category status")
	}
	return nil
}

func categoryError(err error, message string) error {
	if errors.Is(err, repositories.ErrCategoryNotFound) {
		return apperrors.NewNotFound(apperrors.CategoryNotFound)
	}
	return apperrors.WrapStore(err, message)
}
