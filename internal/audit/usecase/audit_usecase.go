package usecase

import (
	"encoding/json"
	"log"

	"b4nkd-backend/internal/audit/domain"
	"b4nkd-backend/internal/audit/repository"
)

// auditLogger implements Logger backed by the system log repository
type auditLogger struct {
	repo repository.SystemLogRepository
}

// NewLogger creates a new audit Logger
func NewLogger(repo repository.SystemLogRepository) Logger {
	return &auditLogger{repo: repo}
}

func (l *auditLogger) Record(operation, actor, key string, data interface{}, info domain.RequestInfo) {
	l.write(operation, actor, key, data, info)
}

func (l *auditLogger) RecordUpdate(operation, actor, key string, oldData, newData map[string]interface{}, info domain.RequestInfo) {
	changedOld, changedNew := diffFields(oldData, newData)
	l.write(operation, actor, key, map[string]interface{}{
		"oldData":     changedOld,
		"updatedData": changedNew,
	}, info)
}

func (l *auditLogger) write(operation, actor, key string, data interface{}, info domain.RequestInfo) {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("[Audit] Failed to marshal operation data for %s: %v", operation, err)
		raw = []byte("{}")
	}

	entry := &domain.SystemLog{
		Operation:     operation,
		OperationBy:   actor,
		Key:           key,
		IPAddress:     info.IPAddress,
		Device:        info.Device,
		OperationData: string(raw),
	}

	// Fire-and-forget: the primary operation must not wait on the audit write
	go func() {
		if err := l.repo.Create(entry); err != nil {
			log.Printf("[Audit] Failed to write audit entry %s/%s: %v", operation, key, err)
		}
	}()
}

// diffFields returns only the fields that changed between old and new data
func diffFields(oldData, newData map[string]interface{}) (map[string]interface{}, map[string]interface{}) {
	changedOld := make(map[string]interface{})
	changedNew := make(map[string]interface{})
	for k, newVal := range newData {
		if oldVal, ok := oldData[k]; !ok || oldVal != newVal {
			changedOld[k] = oldData[k]
			changedNew[k] = newVal
		}
	}
	return changedOld, changedNew
}
