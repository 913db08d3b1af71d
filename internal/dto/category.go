package dto

import (
	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category. Type is
// immutable after creation, so there is no type field on the update request.
type CreateCategoryRequest struct {
	Name  string              `json:"name" binding:"required"`
	Type  domain.CategoryType `json:"type" binding:"required,oneof=income expense"`
	Icon  string              `json:"icon"`
	Color string              `json:"color"`
}

// UpdateCategoryRequest covers the editable cosmetic fields.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

// CategoryResponse mirrors domain.Category.
type CategoryResponse struct {
	CategoryID string              `json:"categoryID"`
	Name       string              `json:"name"`
	Type       domain.CategoryType `json:"type"`
	Icon       string              `json:"icon"`
	Color      string              `json:"color"`
	IsDefault  bool                `json:"isDefault"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Type:       c.Type,
		Icon:       c.Icon,
		Color:      c.Color,
		IsDefault:  c.IsDefault,
	}
}

// ToCategoryResponses converts a slice of categories.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
