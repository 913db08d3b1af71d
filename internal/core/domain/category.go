package domain

// CategoryType restricts a category to tagging either income or expense
// transactions. Immutable after creation.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	return t == CategoryIncome || t == CategoryExpense
}

// Category tags transactions. Default categories are seeded by migration and
// cannot be deleted; deleting a non-default category leaves referencing
// transactions uncategorized rather than cascading.
type Category struct {
	CategoryID string       `json:"categoryID"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	Icon       string       `json:"icon"`
	Color      string       `json:"color"`
	IsDefault  bool         `json:"isDefault"`
	AuditFields
}
