// Package domain contains core concepts of the notification hub.
// This file defines the Notification payload and its per-kind data.
// A notification is immutable once built; CreatedAt is set exactly once.
package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"notification-hub/errors"

	"github.com/google/uuid"
)

type Kind string

const (
	KindJobMatch           Kind = "JOB_MATCH"
	KindResumeAnalysis     Kind = "RESUME_ANALYSIS"
	KindSessionReminder    Kind = "SESSION_REMINDER"
	KindApplicationUpdate  Kind = "APPLICATION_UPDATE"
	KindCounselorMessage   Kind = "COUNSELOR_MESSAGE"
	KindSystemAnnouncement Kind = "SYSTEM_ANNOUNCEMENT"
)

var kinds = map[Kind]Category{
	KindJobMatch:           CategoryJobMatching,
	KindResumeAnalysis:     CategoryResumeAnalysis,
	KindSessionReminder:    CategoryCounselingSessions,
	KindApplicationUpdate:  CategoryApplications,
	KindCounselorMessage:   CategoryCounselorCommunication,
	KindSystemAnnouncement: CategorySystemAnnouncements,
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kinds[k]; !ok {
		return "", fmt.Errorf("%w: %q", errors.ErrInvalidKind, s)
	}
	return k, nil
}

// DefaultCategory is the category a notification of this kind is filed under.
func (k Kind) DefaultCategory() Category {
	return kinds[k]
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func ParsePriority(s string) Priority {
	switch p := Priority(s); p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p
	default:
		return PriorityMedium
	}
}

type Category string

const (
	CategoryJobMatching            Category = "job_matching"
	CategoryResumeAnalysis         Category = "resume_analysis"
	CategoryCounselingSessions     Category = "counseling_sessions"
	CategoryApplications           Category = "applications"
	CategoryCounselorCommunication Category = "counselor_communication"
	CategorySystemAnnouncements    Category = "system_announcements"
	CategoryTest                   Category = "test"
)

// NotificationData is the kind-specific payload. The dispatcher never looks inside.
type NotificationData interface {
	Kind() Kind
}

type JobMatchData struct {
	JobID      string  `json:"jobId"`
	MatchScore float64 `json:"matchScore"`
}

func (JobMatchData) Kind() Kind { return KindJobMatch }

type ResumeAnalysisData struct {
	ResumeID string `json:"resumeId"`
	ATSScore int    `json:"atsScore"`
}

func (ResumeAnalysisData) Kind() Kind { return KindResumeAnalysis }

type SessionReminderData struct {
	SessionID   string    `json:"sessionId"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

func (SessionReminderData) Kind() Kind { return KindSessionReminder }

type ApplicationStatus string

const (
	ApplicationReviewing ApplicationStatus = "REVIEWING"
	ApplicationInterview ApplicationStatus = "INTERVIEW"
	ApplicationOffer     ApplicationStatus = "OFFER"
	ApplicationRejected  ApplicationStatus = "REJECTED"
)

type ApplicationUpdateData struct {
	ApplicationID string            `json:"applicationId"`
	JobTitle      string            `json:"jobTitle"`
	Company       string            `json:"company"`
	Status        ApplicationStatus `json:"status"`
}

func (ApplicationUpdateData) Kind() Kind { return KindApplicationUpdate }

type CounselorMessageData struct {
	CounselorID   string `json:"counselorId"`
	MessageID     string `json:"messageId,omitempty"`
	CounselorName string `json:"counselorName,omitempty"`
}

func (CounselorMessageData) Kind() Kind { return KindCounselorMessage }

type AnnouncementData struct {
	Attributes map[string]string `json:"attributes,omitempty"`
}

func (AnnouncementData) Kind() Kind { return KindSystemAnnouncement }

type Notification struct {
	ID           uuid.UUID
	Kind         Kind
	Title        string
	Body         string
	TargetUserID UserID
	Data         NotificationData
	Priority     Priority
	Category     Category
	CreatedAt    time.Time
}

// NewNotification builds a notification addressed to target, stamped with
// the current time, MEDIUM priority and the kind's default category.
func NewNotification(target UserID, kind Kind, title, body string, data NotificationData) Notification {
	return Notification{
		ID:           uuid.New(),
		Kind:         kind,
		Title:        title,
		Body:         body,
		TargetUserID: target,
		Data:         data,
		Priority:     PriorityMedium,
		Category:     kind.DefaultCategory(),
		CreatedAt:    time.Now().UTC(),
	}
}

func (n Notification) WithPriority(p Priority) Notification {
	n.Priority = p
	return n
}

func (n Notification) WithCategory(c Category) Notification {
	n.Category = c
	return n
}

// ForUser copies a template for another recipient. The copy gets its own ID
// but keeps CreatedAt.
func (n Notification) ForUser(userID UserID) Notification {
	n.ID = uuid.New()
	n.TargetUserID = userID
	return n
}

func (n Notification) Validate() error {
	if _, ok := kinds[n.Kind]; !ok {
		return fmt.Errorf("%w: %q", errors.ErrInvalidKind, n.Kind)
	}
	if n.Data != nil && n.Data.Kind() != n.Kind {
		return fmt.Errorf("%w: %s data attached to %s notification",
			errors.ErrInvalidKind, n.Data.Kind(), n.Kind)
	}
	return nil
}

// wireNotification keeps the field names clients already listen for.
type wireNotification struct {
	ID        string          `json:"id"`
	Type      Kind            `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	UserID    UserID          `json:"userId,omitempty"`
	Priority  Priority        `json:"priority"`
	Category  Category        `json:"category"`
	Timestamp time.Time       `json:"timestamp"`
}

func (n Notification) MarshalJSON() ([]byte, error) {
	w := wireNotification{
		ID:        n.ID.String(),
		Type:      n.Kind,
		Title:     n.Title,
		Message:   n.Body,
		UserID:    n.TargetUserID,
		Priority:  n.Priority,
		Category:  n.Category,
		Timestamp: n.CreatedAt,
	}
	if n.Data != nil {
		raw, err := json.Marshal(n.Data)
		if err != nil {
			return nil, err
		}
		w.Data = raw
	}
	return json.Marshal(w)
}

func (n *Notification) UnmarshalJSON(b []byte) error {
	var w wireNotification
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	kind, err := ParseKind(string(w.Type))
	if err != nil {
		return err
	}
	id, err := uuid.Parse(w.ID)
	if err != nil {
		return fmt.Errorf("notification id: %w", err)
	}
	data, err := DecodeData(kind, w.Data)
	if err != nil {
		return err
	}
	*n = Notification{
		ID:           id,
		Kind:         kind,
		Title:        w.Title,
		Body:         w.Message,
		TargetUserID: w.UserID,
		Data:         data,
		Priority:     w.Priority,
		Category:     w.Category,
		CreatedAt:    w.Timestamp,
	}
	return nil
}

// DecodeData builds the typed payload of kind from its JSON form.
// Empty or null input yields nil data.
func DecodeData(kind Kind, raw json.RawMessage) (NotificationData, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	switch kind {
	case KindJobMatch:
		return decodeInto[JobMatchData](raw)
	case KindResumeAnalysis:
		return decodeInto[ResumeAnalysisData](raw)
	case KindSessionReminder:
		return decodeInto[SessionReminderData](raw)
	case KindApplicationUpdate:
		return decodeInto[ApplicationUpdateData](raw)
	case KindCounselorMessage:
		return decodeInto[CounselorMessageData](raw)
	case KindSystemAnnouncement:
		return decodeInto[AnnouncementData](raw)
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrInvalidKind, kind)
	}
}

func decodeInto[T NotificationData](raw json.RawMessage) (NotificationData, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%s data: %w", v.Kind(), err)
	}
	return v, nil
}

// NotificationRecord is a notification as kept by the record store,
// together with its read state.
type NotificationRecord struct {
	Notification Notification `json:"notification"`
	ReadAt       *time.Time   `json:"readAt,omitempty"`
}

func (r NotificationRecord) IsRead() bool { return r.ReadAt != nil }

type NotificationStats struct {
	Total      int              `json:"total"`
	Unread     int              `json:"unread"`
	ByCategory map[Category]int `json:"byCategory"`
	ByPriority map[Priority]int `json:"byPriority"`
}
