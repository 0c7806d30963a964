package repository

import "b4nkd-backend/internal/user/domain"

// ProfileRepository defines the read-side interface for user profiles
type ProfileRepository interface {
	// FindByUserIDs returns the profiles for the given users; users without
	// a profile are simply absent from the result
	FindByUserIDs(userIDs []string) ([]*domain.UserProfile, error)
}
