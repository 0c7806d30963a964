package domain

import categorydomain "b4nkd-backend/internal/category/domain"

// TargetingMode selects how a delivery resolves its device tokens. It is a
// closed set: Broadcast, ByCategory, or ByUsers.
type TargetingMode interface {
	targetingMode()
}

// Broadcast targets every registered device.
type Broadcast struct{}

// ByCategory targets the devices of users classified into one category.
type ByCategory struct {
	Category categorydomain.Category
}

// ByUsers targets the devices of an explicit set of users.
type ByUsers struct {
	UserIDs []string
}

func (Broadcast) targetingMode()  {}
func (ByCategory) targetingMode() {}
func (ByUsers) targetingMode()    {}
