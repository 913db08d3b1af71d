package repositories

import (
	"context"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// CategoryRepository persists categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	// FindCategoryByNameAndType supports the idempotent lazy creation of
	// system categories such as "Client Payments".
	FindCategoryByNameAndType(ctx context.Context, name string, categoryType domain.CategoryType) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}
