package usecase

import (
	"testing"
	"time"

	auditdomain "b4nkd-backend/internal/audit/domain"
	ledgerdomain "b4nkd-backend/internal/ledger/domain"
	"b4nkd-backend/internal/notification/domain"
	userdomain "b4nkd-backend/internal/user/domain"

	"github.com/stretchr/testify/require"
)

func newCrudUsecase(repo *fakeNotifRepo, ledger fakeLedger, profiles fakeProfiles) NotificationUsecase {
	return NewNotificationUsecase(repo, &fakeRegistry{}, &fakeCategories{},
		ledger, profiles, &fakeGateway{}, noopAudit{}, 4, 0)
}

func TestCreateNotificationTrimsFields(t *testing.T) {
	repo := &fakeNotifRepo{notifications: map[string]*domain.Notification{}}
	uc := newCrudUsecase(repo, fakeLedger{}, fakeProfiles{})

	created, err := uc.CreateNotification("  Payday  ", " Salary has landed ", "", "admin", auditdomain.RequestInfo{})
	require.NoError(t, err)
	require.Equal(t, "Payday", created.Title)
	require.Equal(t, "Salary has landed", created.Description)
	require.Len(t, repo.notifications, 1)
}

func TestUpdateNotificationPartial(t *testing.T) {
	repo := &fakeNotifRepo{notifications: map[string]*domain.Notification{
		"n1": {ID: "n1", Title: "Old title", Description: "Old body", Image: "old.png"},
	}}
	uc := newCrudUsecase(repo, fakeLedger{}, fakeProfiles{})

	newTitle := "New title"
	updated, err := uc.UpdateNotification("n1", NotificationUpdateRequest{Title: &newTitle}, "admin", auditdomain.RequestInfo{})
	require.NoError(t, err)
	require.Equal(t, "New title", updated.Title)

	// Fields not present in the request are untouched
	require.Equal(t, "Old body", updated.Description)
	require.Equal(t, "old.png", updated.Image)
}

func TestUpdateNotificationMissing(t *testing.T) {
	uc := newCrudUsecase(&fakeNotifRepo{}, fakeLedger{}, fakeProfiles{})

	title := "x"
	_, err := uc.UpdateNotification("ghost", NotificationUpdateRequest{Title: &title}, "admin", auditdomain.RequestInfo{})
	require.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestDeleteNotificationReportsExistence(t *testing.T) {
	repo := &fakeNotifRepo{notifications: map[string]*domain.Notification{
		"n1": {ID: "n1", Title: "t"},
	}}
	uc := newCrudUsecase(repo, fakeLedger{}, fakeProfiles{})

	deleted, err := uc.DeleteNotification("n1", "admin", auditdomain.RequestInfo{})
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = uc.DeleteNotification("n1", "admin", auditdomain.RequestInfo{})
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestLargeTransactionAlertsJoinNames(t *testing.T) {
	when := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	uc := newCrudUsecase(&fakeNotifRepo{},
		fakeLedger{above: []*ledgerdomain.Transaction{
			{ID: "tx1", UserID: "u1", Amount: 15000, TransactionDate: when},
			{ID: "tx2", UserID: "u2", Amount: 12000, TransactionDate: when},
		}},
		fakeProfiles{profiles: []*userdomain.UserProfile{
			{UserID: "u1", FirstName: "Grace", LastName: "Hopper"},
		}},
	)

	alerts, err := uc.LargeTransactionAlerts()
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	require.Equal(t, "Above 10000 Transaction", alerts[0].Action)
	require.Equal(t, "Grace", alerts[0].FirstName)
	require.Equal(t, "Hopper", alerts[0].LastName)
	require.Equal(t, when, alerts[0].CreatedAt)

	// Missing profile leaves the name blank but keeps the entry
	require.Empty(t, alerts[1].FirstName)
	require.Equal(t, float64(12000), alerts[1].Amount)
}

func TestRecentTransactionAlerts(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	uc := newCrudUsecase(&fakeNotifRepo{},
		fakeLedger{window: []*ledgerdomain.Transaction{
			{ID: "tx1", UserID: "u1", Amount: 42, TransactionDate: now.Add(-10 * time.Minute)},
		}},
		fakeProfiles{},
	)

	alerts, err := uc.RecentTransactionAlerts(now)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, "1 hour Transaction", alerts[0].Action)
}
