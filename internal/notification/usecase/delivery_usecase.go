package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	categorydomain "b4nkd-backend/internal/category/domain"
	devicedomain "b4nkd-backend/internal/device/domain"
	"b4nkd-backend/internal/notification/domain"
	"b4nkd-backend/pkg/fcm"
)

// resolvedTarget is the output of target resolution: the token set to
// dispatch to, plus the mode-specific metadata and messages.
type resolvedTarget struct {
	tokens      []*devicedomain.DeviceToken
	targetUsers int
	category    categorydomain.Category
	metadata    map[string]string
	// emptyMessage explains an empty token set; "no matching users" and
	// "matching users without devices" are different operator conditions
	emptyMessage string
}

func (u *notificationUsecase) Deliver(ctx context.Context, notificationID string, mode domain.TargetingMode) (*domain.DeliveryOutcome, error) {
	if u.gateway == nil {
		return nil, errors.New("push gateway is not configured")
	}

	notification, err := u.notifRepo.FindByID(notificationID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	target, err := u.resolveTargets(mode)
	if err != nil {
		return nil, err
	}

	outcome := &domain.DeliveryOutcome{
		TargetUsers: target.targetUsers,
		Category:    target.category,
	}

	if len(target.tokens) == 0 {
		outcome.Message = target.emptyMessage
		return outcome, nil
	}

	payload := fcm.NotificationData{
		Title:    notification.Title,
		Body:     notification.Description,
		ImageURL: notification.Image,
		Data:     target.metadata,
	}

	outcome.Results = u.dispatchAll(ctx, target.tokens, payload)
	outcome.TotalAttempted = len(outcome.Results)

	var failedTokens []string
	for _, result := range outcome.Results {
		if result.OK {
			outcome.SuccessCount++
			continue
		}
		outcome.FailureCount++
		if result.Prunable {
			failedTokens = append(failedTokens, result.Token)
		}
	}

	// A rejected dispatch is treated as a dead endpoint: prune it so the
	// registry heals itself. Runs once, after every dispatch has settled.
	if len(failedTokens) > 0 {
		log.Printf("[Delivery] Cleaning up %d failed tokens", len(failedTokens))
		if err := u.deviceUsecase.RemoveMany(failedTokens); err != nil {
			log.Printf("[Delivery] Failed to prune tokens: %v", err)
		}
	}

	log.Printf("[Delivery] Notification %s: %d success, %d failures of %d",
		notificationID, outcome.SuccessCount, outcome.FailureCount, outcome.TotalAttempted)

	if outcome.SuccessCount == 0 {
		outcome.Message = "Failed to send notification to any device."
		return outcome, ErrAllDispatchesFailed
	}

	outcome.Message = "Notification sent successfully."
	return outcome, nil
}

// dispatchAll fans the payload out to every token concurrently, bounded by
// the worker limit, and waits for all dispatches to settle. Each dispatch
// writes only its own slot of the result slice.
func (u *notificationUsecase) dispatchAll(ctx context.Context, tokens []*devicedomain.DeviceToken, payload fcm.NotificationData) []domain.DispatchResult {
	results := make([]domain.DispatchResult, len(tokens))
	sem := make(chan struct{}, u.workers)
	var wg sync.WaitGroup

	for i, token := range tokens {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			dispatchCtx, cancel := context.WithTimeout(ctx, u.dispatchTimeout)
			defer cancel()

			err := u.gateway.SendToDevice(dispatchCtx, token, payload)
			if err == nil {
				results[i] = domain.DispatchResult{Token: token, OK: true}
				return
			}

			result := domain.DispatchResult{
				Token:  token,
				Reason: fcm.ReasonUnknown,
				Error:  err.Error(),
				// Caller cancellation leaves the outcome unknown, which is
				// not evidence of a dead token
				Prunable: ctx.Err() == nil,
			}
			if sendErr, ok := err.(*fcm.SendError); ok {
				result.Reason = sendErr.Reason
			}
			results[i] = result
		}(i, token.Token)
	}

	wg.Wait()
	return results
}

func (u *notificationUsecase) resolveTargets(mode domain.TargetingMode) (*resolvedTarget, error) {
	switch m := mode.(type) {
	case domain.Broadcast:
		tokens, err := u.deviceUsecase.ListAll()
		if err != nil {
			return nil, err
		}
		return &resolvedTarget{
			tokens:       tokens,
			metadata:     map[string]string{"type": "broadcast"},
			emptyMessage: "No devices are registered.",
		}, nil

	case domain.ByCategory:
		userIDs, err := u.categoryUsecase.UsersInCategory(m.Category)
		if err != nil {
			return nil, err
		}
		target := &resolvedTarget{
			targetUsers: len(userIDs),
			category:    m.Category,
			metadata: map[string]string{
				"type":     "category",
				"category": string(m.Category),
			},
		}
		if len(userIDs) == 0 {
			target.emptyMessage = fmt.Sprintf("No users are currently classified as %s.", m.Category)
			return target, nil
		}

		tokens, err := u.deviceUsecase.ListByOwners(userIDs)
		if err != nil {
			return nil, err
		}
		target.tokens = tokens
		target.emptyMessage = fmt.Sprintf("Users classified as %s have no registered devices.", m.Category)
		return target, nil

	case domain.ByUsers:
		tokens, err := u.deviceUsecase.ListByOwners(m.UserIDs)
		if err != nil {
			return nil, err
		}
		return &resolvedTarget{
			tokens:       tokens,
			targetUsers:  len(m.UserIDs),
			metadata:     map[string]string{"type": "individual"},
			emptyMessage: "The selected users have no registered devices.",
		}, nil

	default:
		return nil, fmt.Errorf("unsupported targeting mode %T", mode)
	}
}
