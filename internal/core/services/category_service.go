package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/pocketledger/internal/apperrors"
	"github.com/pocketledger/pocketledger/internal/core/domain"
	portsrepo "github.com/pocketledger/pocketledger/internal/core/ports/repositories"
	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
	"github.com/pocketledger/pocketledger/internal/dto"
)

var ErrDefaultCategoryImmutable = errors.New("default categories cannot be modified or deleted")

// categoryService implements the CategorySvcFacade interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown category type %q", apperrors.ErrValidation, req.Type)
	}

	if existing, err := s.categoryRepo.FindCategoryByNameAndType(ctx, req.Name, req.Type); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: category %q (%s) already exists", apperrors.ErrDuplicate, req.Name, req.Type)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Type:       req.Type,
		Icon:       req.Icon,
		Color:      req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "failed to save category", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx)
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.IsDefault {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrDefaultCategoryImmutable)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	category.LastUpdatedAt = time.Now().UTC()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category.IsDefault {
		return fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrDefaultCategoryImmutable)
	}
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "failed to delete category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// FindOrCreate resolves a category by name and type, creating it on first
// use. Safe to call repeatedly with the same inputs.
func (s *categoryService) FindOrCreate(ctx context.Context, name string, categoryType domain.CategoryType) (*domain.Category, error) {
	existing, err := s.categoryRepo.FindCategoryByNameAndType(ctx, name, categoryType)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up category %q: %w", name, err)
	}

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       name,
		Type:       categoryType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category %q: %w", name, err)
	}
	s.LogInfo(ctx, "category created on first use", slog.String("name", name), slog.String("type", string(categoryType)))
	return &category, nil
}
