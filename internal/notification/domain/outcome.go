package domain

import (
	categorydomain "b4nkd-backend/internal/category/domain"
	"b4nkd-backend/pkg/fcm"
)

// DispatchResult is the outcome of one gateway call for one token.
type DispatchResult struct {
	Token string `json:"token"`
	OK    bool   `json:"ok"`
	// Reason classifies a rejection; empty on success. Pruning currently
	// ignores it, but it is surfaced so the policy can become reason-aware.
	Reason fcm.FailureReason `json:"reason,omitempty"`
	Error  string            `json:"error,omitempty"`
	// Prunable marks a rejection as evidence of a dead token. A dispatch cut
	// short by caller cancellation has an unknown outcome and is not prunable.
	Prunable bool `json:"-"`
}

// DeliveryOutcome aggregates one delivery's dispatch results.
type DeliveryOutcome struct {
	SuccessCount   int                     `json:"successCount"`
	FailureCount   int                     `json:"failureCount"`
	TotalAttempted int                     `json:"total"`
	TargetUsers    int                     `json:"targetUsers,omitempty"`
	Category       categorydomain.Category `json:"category,omitempty"`
	Message        string                  `json:"-"`
	Results        []DispatchResult        `json:"-"`
}
