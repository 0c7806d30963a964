package usecase

import "b4nkd-backend/internal/audit/domain"

// Logger records audit entries for mutating operations. Writes are
// best-effort and asynchronous: a failed audit write never fails or blocks
// the operation being audited.
type Logger interface {
	// Record logs an operation with a JSON snapshot of the data involved
	Record(operation, actor, key string, data interface{}, info domain.RequestInfo)

	// RecordUpdate logs an update with a field-level diff of old vs new data
	RecordUpdate(operation, actor, key string, oldData, newData map[string]interface{}, info domain.RequestInfo)
}
