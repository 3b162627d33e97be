// Package event defines the frames exchanged with connected clients.
// Every frame is a JSON object {"event": <name>, "data": <payload>}.
package event

import (
	"encoding/json"
	"fmt"

	"notification-hub/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Name string

// Inbound, sent by clients.
const (
	Join           Name = "join"
	JoinRole       Name = "join_role"
	LeaveRole      Name = "leave_role"
	Leave          Name = "leave"
	MarkRead       Name = "mark_read"
	GetUnreadCount Name = "get_unread_count"
	Ping           Name = "ping"
)

// Outbound, emitted to clients.
const (
	Notification     Name = "notification"
	Broadcast        Name = "broadcast"
	Joined           Name = "joined"
	NotificationRead Name = "notification_read"
	UnreadCount      Name = "unread_count"
	Pong             Name = "pong"
	Error            Name = "error"
)

type Envelope struct {
	Event Name            `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Encode builds a ready-to-write frame. Encoding happens once per publish,
// every subscribed session receives the same bytes.
func Encode(name Name, data any) ([]byte, error) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
		raw = b
	}
	return json.Marshal(Envelope{Event: name, Data: raw})
}

func Decode(frame []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", errors.ErrMalformedEvent, err)
	}
	if env.Event == "" {
		return Envelope{}, fmt.Errorf("%w: missing event name", errors.ErrMalformedEvent)
	}
	return env, nil
}

// DecodePayload unmarshals the envelope data into dst and checks its
// validate tags. Both failures wrap ErrMalformedEvent.
func DecodePayload(env Envelope, dst any) error {
	if len(env.Data) == 0 {
		return fmt.Errorf("%w: %s has no data", errors.ErrMalformedEvent, env.Event)
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrMalformedEvent, env.Event, err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrMalformedEvent, env.Event, err)
	}
	return nil
}

// Outbound payloads.

type JoinedPayload struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Joined  bool   `json:"joined"`
}

type NotificationReadPayload struct {
	NotificationID string `json:"notificationId"`
	Success        bool   `json:"success"`
}

type UnreadCountPayload struct {
	UserID string `json:"userId"`
	Count  int    `json:"count"`
}

type ErrorPayload struct {
	Event   Name   `json:"event,omitempty"`
	Message string `json:"message"`
}

// Inbound payloads, validated at the transport boundary.

type JoinPayload struct {
	UserID string `json:"userId" validate:"required,max=128"`
}

type RolePayload struct {
	Role string `json:"role" validate:"required,max=64"`
}

type MarkReadPayload struct {
	NotificationID string `json:"notificationId" validate:"required,uuid"`
}
