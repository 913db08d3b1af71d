package services

import (
	"context"

	"github.com/pocketledger/pocketledger/internal/core/domain"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// CategorySvcFacade manages transaction categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	// FindOrCreate returns the category with the given name and type,
	// creating it on first use. Idempotent.
	FindOrCreate(ctx context.Context, name string, categoryType domain.CategoryType) (*domain.Category, error)
}
