package usecase

import (
	"strings"
	"time"

	auditdomain "b4nkd-backend/internal/audit/domain"
	auditusecase "b4nkd-backend/internal/audit/usecase"
	categoryusecase "b4nkd-backend/internal/category/usecase"
	deviceusecase "b4nkd-backend/internal/device/usecase"
	ledgerdomain "b4nkd-backend/internal/ledger/domain"
	ledgerrepo "b4nkd-backend/internal/ledger/repository"
	"b4nkd-backend/internal/notification/domain"
	"b4nkd-backend/internal/notification/repository"
	userrepo "b4nkd-backend/internal/user/repository"
)

// largeTransactionThreshold is the amount at or above which a ledger entry
// shows up in the large-transaction alert feed.
const largeTransactionThreshold = 10000

// notificationUsecase implements NotificationUsecase
type notificationUsecase struct {
	notifRepo       repository.NotificationRepository
	deviceUsecase   deviceusecase.DeviceUsecase
	categoryUsecase categoryusecase.CategoryUsecase
	ledgerRepo      ledgerrepo.TransactionRepository
	profileRepo     userrepo.ProfileRepository
	gateway         Gateway
	audit           auditusecase.Logger
	workers         int
	dispatchTimeout time.Duration
}

// NewNotificationUsecase creates a new instance of notificationUsecase.
// workers bounds the number of concurrent gateway calls per delivery;
// dispatchTimeout applies to each individual dispatch.
func NewNotificationUsecase(
	notifRepo repository.NotificationRepository,
	deviceUsecase deviceusecase.DeviceUsecase,
	categoryUsecase categoryusecase.CategoryUsecase,
	ledgerRepo ledgerrepo.TransactionRepository,
	profileRepo userrepo.ProfileRepository,
	gateway Gateway,
	audit auditusecase.Logger,
	workers int,
	dispatchTimeout time.Duration,
) NotificationUsecase {
	if workers <= 0 {
		workers = 32
	}
	if dispatchTimeout <= 0 {
		dispatchTimeout = 10 * time.Second
	}
	return &notificationUsecase{
		notifRepo:       notifRepo,
		deviceUsecase:   deviceUsecase,
		categoryUsecase: categoryUsecase,
		ledgerRepo:      ledgerRepo,
		profileRepo:     profileRepo,
		gateway:         gateway,
		audit:           audit,
		workers:         workers,
		dispatchTimeout: dispatchTimeout,
	}
}

func (u *notificationUsecase) CreateNotification(title, description, image, actor string, info auditdomain.RequestInfo) (*domain.Notification, error) {
	notification := &domain.Notification{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Image:       strings.TrimSpace(image),
	}
	if err := u.notifRepo.Create(notification); err != nil {
		return nil, err
	}

	u.audit.Record("CREATE", actor, "create-notification", notification, info)
	return notification, nil
}

func (u *notificationUsecase) GetNotifications(page, limit int) ([]*domain.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return u.notifRepo.FindPage(page, limit)
}

func (u *notificationUsecase) GetNotificationByID(id string) (*domain.Notification, error) {
	return u.notifRepo.FindByID(id)
}

func (u *notificationUsecase) UpdateNotification(id string, updates NotificationUpdateRequest, actor string, info auditdomain.RequestInfo) (*domain.Notification, error) {
	notification, err := u.notifRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	oldData := map[string]interface{}{
		"title":       notification.Title,
		"description": notification.Description,
		"image":       notification.Image,
	}

	if updates.Title != nil {
		notification.Title = strings.TrimSpace(*updates.Title)
	}
	if updates.Description != nil {
		notification.Description = strings.TrimSpace(*updates.Description)
	}
	if updates.Image != nil {
		notification.Image = strings.TrimSpace(*updates.Image)
	}

	if err := u.notifRepo.Update(notification); err != nil {
		return nil, err
	}

	u.audit.RecordUpdate("UPDATE", actor, "update-notification", oldData, map[string]interface{}{
		"title":       notification.Title,
		"description": notification.Description,
		"image":       notification.Image,
	}, info)
	return notification, nil
}

func (u *notificationUsecase) DeleteNotification(id, actor string, info auditdomain.RequestInfo) (bool, error) {
	deleted, err := u.notifRepo.Delete(id)
	if err != nil {
		return false, err
	}
	if deleted {
		u.audit.Record("DELETE", actor, "delete-notification", map[string]interface{}{"id": id}, info)
	}
	return deleted, nil
}

func (u *notificationUsecase) LargeTransactionAlerts() ([]domain.TransactionAlert, error) {
	entries, err := u.ledgerRepo.FindAboveAmount(largeTransactionThreshold)
	if err != nil {
		return nil, err
	}
	return u.buildAlerts(entries, "Above 10000 Transaction")
}

func (u *notificationUsecase) RecentTransactionAlerts(currentTime time.Time) ([]domain.TransactionAlert, error) {
	entries, err := u.ledgerRepo.FindInWindow(currentTime.Add(-time.Hour), currentTime)
	if err != nil {
		return nil, err
	}
	return u.buildAlerts(entries, "1 hour Transaction")
}

// buildAlerts joins ledger entries with profile names. Missing profiles
// leave the name fields blank.
func (u *notificationUsecase) buildAlerts(entries []*ledgerdomain.Transaction, action string) ([]domain.TransactionAlert, error) {
	userIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		userIDs = append(userIDs, e.UserID)
	}

	type name struct{ first, last string }
	names := make(map[string]name)
	profiles, err := u.profileRepo.FindByUserIDs(userIDs)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		names[p.UserID] = name{first: p.FirstName, last: p.LastName}
	}

	alerts := make([]domain.TransactionAlert, 0, len(entries))
	for _, e := range entries {
		n := names[e.UserID]
		alerts = append(alerts, domain.TransactionAlert{
			ID:        e.ID,
			Amount:    e.Amount,
			CreatedAt: e.TransactionDate,
			Action:    action,
			FirstName: n.first,
			LastName:  n.last,
		})
	}
	return alerts, nil
}
