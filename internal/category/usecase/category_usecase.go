package usecase

import (
	"fmt"
	"log"

	"b4nkd-backend/internal/category/domain"
	deviceusecase "b4nkd-backend/internal/device/usecase"
	ledgerrepo "b4nkd-backend/internal/ledger/repository"
	userrepo "b4nkd-backend/internal/user/repository"
)

// categoryUsecase implements CategoryUsecase
type categoryUsecase struct {
	ledgerRepo    ledgerrepo.TransactionRepository
	profileRepo   userrepo.ProfileRepository
	deviceUsecase deviceusecase.DeviceUsecase
}

// NewCategoryUsecase creates a new instance of categoryUsecase
func NewCategoryUsecase(ledgerRepo ledgerrepo.TransactionRepository, profileRepo userrepo.ProfileRepository, deviceUsecase deviceusecase.DeviceUsecase) CategoryUsecase {
	return &categoryUsecase{
		ledgerRepo:    ledgerRepo,
		profileRepo:   profileRepo,
		deviceUsecase: deviceUsecase,
	}
}

func (u *categoryUsecase) ComputeCategories() ([]domain.UserCategory, error) {
	flows, err := u.ledgerRepo.SumFlowsByUser()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ledger flows: %w", err)
	}

	categories := make([]domain.UserCategory, 0, len(flows))
	seen := make(map[string]bool, len(flows))
	for _, flow := range flows {
		categories = append(categories, domain.UserCategory{
			UserID:   flow.UserID,
			Income:   flow.Income,
			Expense:  flow.Expense,
			Category: domain.Classify(flow.Income, flow.Expense),
		})
		seen[flow.UserID] = true
	}

	// Device owners with no ledger activity still belong to exactly one
	// bucket. A ledger-derived entry is never overwritten by this synthesis.
	owners, err := u.deviceUsecase.DistinctOwners()
	if err != nil {
		return nil, fmt.Errorf("failed to list device owners: %w", err)
	}
	for _, owner := range owners {
		if seen[owner] {
			continue
		}
		categories = append(categories, domain.UserCategory{
			UserID:   owner,
			Category: domain.CategoryUncategorized,
		})
		seen[owner] = true
	}

	u.attachNames(categories)
	return categories, nil
}

func (u *categoryUsecase) UsersInCategory(category domain.Category) ([]string, error) {
	categories, err := u.ComputeCategories()
	if err != nil {
		return nil, err
	}

	var userIDs []string
	for _, uc := range categories {
		if uc.Category == category {
			userIDs = append(userIDs, uc.UserID)
		}
	}
	return userIDs, nil
}

// attachNames fills in display names for presentation. Names are best-effort:
// a missing profile, or an unavailable profile store, leaves them blank.
func (u *categoryUsecase) attachNames(categories []domain.UserCategory) {
	if len(categories) == 0 {
		return
	}

	userIDs := make([]string, 0, len(categories))
	for _, uc := range categories {
		userIDs = append(userIDs, uc.UserID)
	}

	profiles, err := u.profileRepo.FindByUserIDs(userIDs)
	if err != nil {
		log.Printf("[Category] Failed to load user profiles (names left blank): %v", err)
		return
	}

	names := make(map[string]string, len(profiles))
	for _, p := range profiles {
		names[p.UserID] = p.DisplayName()
	}
	for i := range categories {
		categories[i].Name = names[categories[i].UserID]
	}
}
