package usecase

import (
	"testing"

	auditdomain "b4nkd-backend/internal/audit/domain"
	"b4nkd-backend/internal/device/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeTokenRepo is an in-memory DeviceTokenRepository for usecase tests.
type fakeTokenRepo struct {
	records []*domain.DeviceToken
}

func (f *fakeTokenRepo) Create(token *domain.DeviceToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	f.records = append(f.records, token)
	return nil
}

func (f *fakeTokenRepo) FindByToken(token string) (*domain.DeviceToken, error) {
	for _, r := range f.records {
		if r.Token == token {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeTokenRepo) UpdateOwner(id, userID string) error {
	for _, r := range f.records {
		if r.ID == id {
			r.UserID = userID
		}
	}
	return nil
}

func (f *fakeTokenRepo) FindAll() ([]*domain.DeviceToken, error) {
	return f.records, nil
}

func (f *fakeTokenRepo) FindByOwners(userIDs []string) ([]*domain.DeviceToken, error) {
	owners := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		owners[id] = true
	}
	var out []*domain.DeviceToken
	for _, r := range f.records {
		if owners[r.UserID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeTokenRepo) DeleteByTokens(tokens []string) error {
	doomed := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		doomed[t] = true
	}
	var kept []*domain.DeviceToken
	for _, r := range f.records {
		if !doomed[r.Token] {
			kept = append(kept, r)
		}
	}
	f.records = kept
	return nil
}

func (f *fakeTokenRepo) DistinctOwners() ([]string, error) {
	seen := make(map[string]bool)
	var owners []string
	for _, r := range f.records {
		if r.UserID != "" && !seen[r.UserID] {
			seen[r.UserID] = true
			owners = append(owners, r.UserID)
		}
	}
	return owners, nil
}

// recordingAudit captures audit calls synchronously.
type recordingAudit struct {
	operations []string
}

func (a *recordingAudit) Record(operation, actor, key string, data interface{}, info auditdomain.RequestInfo) {
	a.operations = append(a.operations, operation)
}

func (a *recordingAudit) RecordUpdate(operation, actor, key string, oldData, newData map[string]interface{}, info auditdomain.RequestInfo) {
	a.operations = append(a.operations, operation)
}

func newTestUsecase() (DeviceUsecase, *fakeTokenRepo, *recordingAudit) {
	repo := &fakeTokenRepo{}
	audit := &recordingAudit{}
	return NewDeviceUsecase(repo, audit), repo, audit
}

func TestRegisterNewToken(t *testing.T) {
	uc, repo, audit := newTestUsecase()

	record, reassigned, err := uc.Register("tok-1", "u1", auditdomain.RequestInfo{})
	require.NoError(t, err)
	require.False(t, reassigned)
	require.Equal(t, "u1", record.UserID)
	require.Len(t, repo.records, 1)
	require.Contains(t, audit.operations, "CREATE_FCM_TOKEN")
}

func TestRegisterTrimsToken(t *testing.T) {
	uc, repo, _ := newTestUsecase()

	record, _, err := uc.Register("  tok-1  ", "", auditdomain.RequestInfo{})
	require.NoError(t, err)
	require.Equal(t, "tok-1", record.Token)
	require.Len(t, repo.records, 1)
}

func TestRegisterEmptyTokenRejected(t *testing.T) {
	uc, _, _ := newTestUsecase()

	_, _, err := uc.Register("   ", "u1", auditdomain.RequestInfo{})
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRegisterDuplicateSameOwner(t *testing.T) {
	uc, repo, _ := newTestUsecase()

	_, _, err := uc.Register("tok-1", "u1", auditdomain.RequestInfo{})
	require.NoError(t, err)

	_, _, err = uc.Register("tok-1", "u1", auditdomain.RequestInfo{})
	require.ErrorIs(t, err, ErrAlreadyRegistered)
	require.Len(t, repo.records, 1)
}

func TestRegisterDuplicateAnonymous(t *testing.T) {
	uc, _, _ := newTestUsecase()

	_, _, err := uc.Register("tok-1", "u1", auditdomain.RequestInfo{})
	require.NoError(t, err)

	// No owner change requested: duplicate is rejected
	_, _, err = uc.Register("tok-1", "", auditdomain.RequestInfo{})
	require.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegisterOwnershipUpdate(t *testing.T) {
	uc, repo, audit := newTestUsecase()

	_, _, err := uc.Register("tok-1", "u1", auditdomain.RequestInfo{})
	require.NoError(t, err)

	record, reassigned, err := uc.Register("tok-1", "u2", auditdomain.RequestInfo{})
	require.NoError(t, err)
	require.True(t, reassigned)
	require.Equal(t, "u2", record.UserID)

	// Reassignment must not create a second row
	require.Len(t, repo.records, 1)
	require.Equal(t, "u2", repo.records[0].UserID)
	require.Contains(t, audit.operations, "UPDATE_FCM_TOKEN")
}

func TestRemoveManyAudited(t *testing.T) {
	uc, repo, audit := newTestUsecase()

	_, _, err := uc.Register("tok-1", "u1", auditdomain.RequestInfo{})
	require.NoError(t, err)

	require.NoError(t, uc.RemoveMany([]string{"tok-1", "tok-ghost"}))
	require.Empty(t, repo.records)
	require.Contains(t, audit.operations, "PRUNE_FCM_TOKEN")

	// Empty prune set writes nothing
	audit.operations = nil
	require.NoError(t, uc.RemoveMany(nil))
	require.Empty(t, audit.operations)
}
