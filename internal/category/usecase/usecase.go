package usecase

import "b4nkd-backend/internal/category/domain"

// CategoryUsecase classifies users by their aggregated ledger flows so
// notifications can target behavioral segments.
type CategoryUsecase interface {
	// ComputeCategories returns one entry per user with ledger activity or at
	// least one registered device. All-or-nothing: on error no partial list
	// is returned.
	ComputeCategories() ([]domain.UserCategory, error)

	// UsersInCategory returns the ids of users currently classified into the
	// given category
	UsersInCategory(category domain.Category) ([]string, error)
}
