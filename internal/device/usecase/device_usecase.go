package usecase

import (
	"strings"

	auditdomain "b4nkd-backend/internal/audit/domain"
	auditusecase "b4nkd-backend/internal/audit/usecase"
	"b4nkd-backend/internal/device/domain"
	"b4nkd-backend/internal/device/repository"
)

// deviceUsecase implements DeviceUsecase
type deviceUsecase struct {
	repo  repository.DeviceTokenRepository
	audit auditusecase.Logger
}

// NewDeviceUsecase creates a new instance of deviceUsecase
func NewDeviceUsecase(repo repository.DeviceTokenRepository, audit auditusecase.Logger) DeviceUsecase {
	return &deviceUsecase{repo: repo, audit: audit}
}

func (u *deviceUsecase) Register(token, userID string, info auditdomain.RequestInfo) (*domain.DeviceToken, bool, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, false, ErrInvalidToken
	}

	existing, err := u.repo.FindByToken(token)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		// Same owner (or no owner change requested): reject the duplicate
		if userID == "" || existing.UserID == userID {
			return nil, false, ErrAlreadyRegistered
		}

		// Token exists under a different owner: reassign instead of rejecting
		oldUserID := existing.UserID
		if err := u.repo.UpdateOwner(existing.ID, userID); err != nil {
			return nil, false, err
		}
		existing.UserID = userID

		u.audit.RecordUpdate("UPDATE_FCM_TOKEN", userID, "update-fcm-token",
			map[string]interface{}{"user_id": oldUserID},
			map[string]interface{}{"user_id": userID},
			info)
		return existing, true, nil
	}

	record := &domain.DeviceToken{
		Token:  token,
		UserID: userID,
	}
	if err := u.repo.Create(record); err != nil {
		return nil, false, err
	}

	u.audit.Record("CREATE_FCM_TOKEN", userID, "add-fcm-token", record, info)
	return record, false, nil
}

func (u *deviceUsecase) ListAll() ([]*domain.DeviceToken, error) {
	return u.repo.FindAll()
}

func (u *deviceUsecase) ListByOwners(userIDs []string) ([]*domain.DeviceToken, error) {
	return u.repo.FindByOwners(userIDs)
}

func (u *deviceUsecase) RemoveMany(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	if err := u.repo.DeleteByTokens(tokens); err != nil {
		return err
	}

	u.audit.Record("PRUNE_FCM_TOKEN", "", "prune-fcm-token",
		map[string]interface{}{"tokens": tokens, "count": len(tokens)},
		auditdomain.RequestInfo{})
	return nil
}

func (u *deviceUsecase) DistinctOwners() ([]string, error) {
	return u.repo.DistinctOwners()
}
