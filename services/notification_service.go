package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"notification-hub/contract"
	"notification-hub/domain"
	errs "notification-hub/errors"

	"github.com/samber/lo"
)

// NotificationService is what the rest of the application calls when a
// domain event should reach a user. It records notifications when a store
// is configured and pushes them to whoever is online.
//
// An undelivered notification is not an error. The caller decides on a
// fallback channel from the returned flag or report.
type NotificationService struct {
	log        *slog.Logger
	dispatcher contract.IDispatcher
	repository contract.INotificationRepository
	now        func() time.Time
}

// NewNotificationService builds the service. repository may be nil, in which
// case notifications are only pushed live and read-state calls fail with
// ErrStoreUnavailable.
func NewNotificationService(log *slog.Logger, dispatcher contract.IDispatcher, repository contract.INotificationRepository) *NotificationService {
	return &NotificationService{
		log:        log,
		dispatcher: dispatcher,
		repository: repository,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

var _ contract.INotificationService = (*NotificationService)(nil)

// CreateNotification stores n then pushes it to n.TargetUserID.
// A failed write is returned but does not prevent the live push.
func (s *NotificationService) CreateNotification(ctx context.Context, n domain.Notification) (bool, error) {
	if err := n.Validate(); err != nil {
		return false, err
	}
	if n.TargetUserID == "" {
		return false, errs.ErrMissingRecipient
	}
	storeErr := s.store(n)
	delivered := s.dispatcher.SendToUser(ctx, n.TargetUserID, n)
	if !delivered {
		s.log.Info("User offline, notification needs a fallback channel",
			"user_id", n.TargetUserID, "kind", n.Kind, "notification_id", n.ID)
	}
	return delivered, storeErr
}

// NotifyUsers sends template to every user of the list. Each recipient
// gets its own copy and id; the report follows the order of userIDs.
func (s *NotificationService) NotifyUsers(ctx context.Context, userIDs []domain.UserID, template domain.Notification) (domain.DeliveryReport, error) {
	if err := template.Validate(); err != nil {
		return nil, err
	}
	copies := lo.Map(userIDs, func(u domain.UserID, _ int) domain.Notification {
		return template.ForUser(u)
	})
	var storeErrs []error
	for _, n := range copies {
		if err := s.store(n); err != nil {
			storeErrs = append(storeErrs, err)
		}
	}
	report := s.dispatcher.SendEach(ctx, copies)
	s.log.Info("Bulk notification sent",
		"kind", template.Kind,
		"recipients", len(report),
		"delivered", report.DeliveredCount())
	return report, errors.Join(storeErrs...)
}

// SendSystemAnnouncement notifies the listed users, or every open
// connection when the list is empty. A broadcast returns an empty report.
func (s *NotificationService) SendSystemAnnouncement(ctx context.Context, userIDs []domain.UserID, announcement domain.Notification) (domain.DeliveryReport, error) {
	if len(userIDs) > 0 {
		return s.NotifyUsers(ctx, userIDs, announcement)
	}
	if err := s.Broadcast(ctx, announcement); err != nil {
		return nil, err
	}
	return domain.DeliveryReport{}, nil
}

func (s *NotificationService) NotifyRole(ctx context.Context, role domain.Role, n domain.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	s.dispatcher.SendToRole(ctx, role, n)
	return nil
}

func (s *NotificationService) Broadcast(ctx context.Context, n domain.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	s.dispatcher.Broadcast(ctx, n)
	return nil
}

// ListNotifications returns one page of records, the number of records
// matching opts and the user's overall unread count.
func (s *NotificationService) ListNotifications(userID domain.UserID, opts contract.ListOptions) ([]domain.NotificationRecord, int, int, error) {
	if s.repository == nil {
		return nil, 0, 0, errs.ErrStoreUnavailable
	}
	records, total, err := s.repository.List(userID, opts)
	if err != nil {
		return nil, 0, 0, err
	}
	unread, err := s.repository.UnreadCount(userID)
	if err != nil {
		return nil, 0, 0, err
	}
	return records, total, unread, nil
}

func (s *NotificationService) MarkAsRead(userID domain.UserID, notificationID string) error {
	if s.repository == nil {
		return errs.ErrStoreUnavailable
	}
	return s.repository.MarkAsRead(userID, notificationID, s.now())
}

func (s *NotificationService) MarkAllAsRead(userID domain.UserID) (int, error) {
	if s.repository == nil {
		return 0, errs.ErrStoreUnavailable
	}
	return s.repository.MarkAllAsRead(userID, s.now())
}

func (s *NotificationService) UnreadCount(userID domain.UserID) (int, error) {
	if s.repository == nil {
		return 0, errs.ErrStoreUnavailable
	}
	return s.repository.UnreadCount(userID)
}

func (s *NotificationService) DeleteNotification(userID domain.UserID, notificationID string) error {
	if s.repository == nil {
		return errs.ErrStoreUnavailable
	}
	return s.repository.Delete(userID, notificationID)
}

func (s *NotificationService) Stats(userID domain.UserID) (domain.NotificationStats, error) {
	if s.repository == nil {
		return domain.NotificationStats{}, errs.ErrStoreUnavailable
	}
	return s.repository.Stats(userID)
}

// CleanupOld removes read notifications created more than olderThan ago.
func (s *NotificationService) CleanupOld(olderThan time.Duration) (int, error) {
	if s.repository == nil {
		return 0, errs.ErrStoreUnavailable
	}
	cutoff := s.now().Add(-olderThan)
	deleted, err := s.repository.DeleteReadBefore(cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	s.log.Info("Old notifications cleaned up", "deleted", deleted, "older_than", olderThan)
	return deleted, nil
}

func (s *NotificationService) store(n domain.Notification) error {
	if s.repository == nil {
		return nil
	}
	if err := s.repository.Store(n); err != nil {
		s.log.Error("Unable to store notification",
			"user_id", n.TargetUserID, "notification_id", n.ID, "error", err)
		return fmt.Errorf("store notification %s: %w", n.ID, err)
	}
	return nil
}
