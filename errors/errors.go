package errors

import "fmt"

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrUnknownConnection    = fmt.Errorf("connection is not registered")
	ErrMalformedEvent       = fmt.Errorf("malformed event")
	ErrUnknownEvent         = fmt.Errorf("unknown event")
	ErrIdentityMismatch     = fmt.Errorf("user id does not match the authenticated identity")
	ErrUnauthenticated      = fmt.Errorf("unauthenticated")
	ErrNotJoined            = fmt.Errorf("connection has not joined a user room")
	ErrInvalidKind          = fmt.Errorf("invalid notification kind")
	ErrNotificationNotFound = fmt.Errorf("notification not found")
	ErrBackpressure         = fmt.Errorf("session outbox is full")
	ErrSessionClosed        = fmt.Errorf("session is closed")
	ErrTokenGeneration      = fmt.Errorf("token generation failed")
	ErrMissingRecipient     = fmt.Errorf("notification has no target user")
	ErrStoreUnavailable     = fmt.Errorf("notification store is not configured")
)
