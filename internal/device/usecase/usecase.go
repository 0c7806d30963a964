package usecase

import (
	"errors"

	auditdomain "b4nkd-backend/internal/audit/domain"
	"b4nkd-backend/internal/device/domain"
)

var (
	// ErrInvalidToken is returned when the token is empty after trimming
	ErrInvalidToken = errors.New("token is required and must be a non-empty string")

	// ErrAlreadyRegistered is returned when an identical token exists and no
	// ownership change is requested
	ErrAlreadyRegistered = errors.New("this token is already registered")
)

// DeviceUsecase is the token registry: the single source of truth for which
// device endpoints exist and who owns them.
type DeviceUsecase interface {
	// Register stores a new token, or updates ownership when the token
	// already exists under a different owner (app reinstall / re-login).
	// The bool reports whether an existing record was reassigned.
	Register(token, userID string, info auditdomain.RequestInfo) (*domain.DeviceToken, bool, error)

	// ListAll returns every registered token, newest first
	ListAll() ([]*domain.DeviceToken, error)

	// ListByOwners returns the tokens owned by the given users
	ListByOwners(userIDs []string) ([]*domain.DeviceToken, error)

	// RemoveMany deletes the given token values; removing a token that is
	// already gone is a no-op
	RemoveMany(tokens []string) error

	// DistinctOwners returns the distinct user ids that own at least one token
	DistinctOwners() ([]string, error)
}
