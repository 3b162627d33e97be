//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"notification-hub/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// SessionSink is the write side of one live transport connection.
// Deliver must not block past ctx; the frame is already encoded.
type SessionSink interface {
	ID() domain.ConnectionID
	Deliver(ctx context.Context, frame []byte) error
}

// IRegistry is the presence registry. Transport adapters only call the
// lifecycle methods; the underlying maps are never exposed.
type IRegistry interface {
	Connect(sink SessionSink)
	Join(connID domain.ConnectionID, userID domain.UserID) error
	JoinRole(connID domain.ConnectionID, role domain.Role) error
	LeaveRole(connID domain.ConnectionID, role domain.Role)
	Leave(connID domain.ConnectionID, userID domain.UserID)
	OnDisconnect(connID domain.ConnectionID)
	UserOf(connID domain.ConnectionID) (domain.UserID, bool)
	IsReachable(userID domain.UserID) bool
	ReachableSessionCount() int
	ConnectedUserCount() int
	ConnectedUserIDs() []domain.UserID
	SessionCount() int
	SinksFor(room domain.RoomID) []SessionSink
	AllSinks() []SessionSink
}

type IDispatcher interface {
	SendToUser(ctx context.Context, userID domain.UserID, n domain.Notification) bool
	SendToUsers(ctx context.Context, userIDs []domain.UserID, n domain.Notification) domain.DeliveryReport
	SendEach(ctx context.Context, notifications []domain.Notification) domain.DeliveryReport
	Broadcast(ctx context.Context, n domain.Notification)
	SendToRole(ctx context.Context, role domain.Role, n domain.Notification)
}

type ListOptions struct {
	Page       int
	Limit      int
	UnreadOnly bool
	Category   domain.Category
}

type INotificationRepository interface {
	Store(n domain.Notification) error
	List(userID domain.UserID, opts ListOptions) ([]domain.NotificationRecord, int, error)
	MarkAsRead(userID domain.UserID, notificationID string, at time.Time) error
	MarkAllAsRead(userID domain.UserID, at time.Time) (int, error)
	Delete(userID domain.UserID, notificationID string) error
	UnreadCount(userID domain.UserID) (int, error)
	Stats(userID domain.UserID) (domain.NotificationStats, error)
	DeleteReadBefore(cutoff time.Time) (int, error)
}

type INotificationService interface {
	CreateNotification(ctx context.Context, n domain.Notification) (bool, error)
	NotifyUsers(ctx context.Context, userIDs []domain.UserID, template domain.Notification) (domain.DeliveryReport, error)
	SendSystemAnnouncement(ctx context.Context, userIDs []domain.UserID, announcement domain.Notification) (domain.DeliveryReport, error)
	NotifyRole(ctx context.Context, role domain.Role, n domain.Notification) error
	Broadcast(ctx context.Context, n domain.Notification) error
	ListNotifications(userID domain.UserID, opts ListOptions) ([]domain.NotificationRecord, int, int, error)
	MarkAsRead(userID domain.UserID, notificationID string) error
	MarkAllAsRead(userID domain.UserID) (int, error)
	UnreadCount(userID domain.UserID) (int, error)
	DeleteNotification(userID domain.UserID, notificationID string) error
	Stats(userID domain.UserID) (domain.NotificationStats, error)
	CleanupOld(olderThan time.Duration) (int, error)
}
