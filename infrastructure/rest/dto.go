package rest

import (
	"encoding/json"

	"notification-hub/domain"
)

type listQuery struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	UnreadOnly bool   `form:"unreadOnly"`
	Category   string `form:"category"`
}

// notificationRequest is the body shared by every endpoint that builds a
// notification. Data is decoded according to Type.
type notificationRequest struct {
	Type     string          `json:"type" binding:"required"`
	Title    string          `json:"title" binding:"required,max=200"`
	Message  string          `json:"message" binding:"required,max=2000"`
	Priority string          `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Category string          `json:"category"`
	Data     json.RawMessage `json:"data"`
}

// build turns the request into a notification addressed to target.
func (r notificationRequest) build(target domain.UserID) (domain.Notification, error) {
	kind, err := domain.ParseKind(r.Type)
	if err != nil {
		return domain.Notification{}, err
	}
	data, err := domain.DecodeData(kind, r.Data)
	if err != nil {
		return domain.Notification{}, err
	}
	n := domain.NewNotification(target, kind, r.Title, r.Message, data).
		WithPriority(domain.ParsePriority(r.Priority))
	if r.Category != "" {
		n = n.WithCategory(domain.Category(r.Category))
	}
	return n, nil
}

type createRequest struct {
	UserID string `json:"userId" binding:"required,max=128"`
	notificationRequest
}

type bulkRequest struct {
	UserIDs []string `json:"userIds" binding:"required,min=1,dive,required"`
	notificationRequest
}

type testRequest struct {
	Type    string `json:"type" binding:"required"`
	Title   string `json:"title" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=2000"`
}

type announcementRequest struct {
	Title    string            `json:"title" binding:"required,max=200"`
	Message  string            `json:"message" binding:"required,max=2000"`
	UserIDs  []string          `json:"userIds"`
	Priority string            `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Data     map[string]string `json:"data"`
}

type listResponse struct {
	Notifications []domain.NotificationRecord `json:"notifications"`
	Total         int                         `json:"total"`
	UnreadCount   int                         `json:"unreadCount"`
	Page          int                         `json:"page"`
	Limit         int                         `json:"limit"`
}

type actionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type deliveryResponse struct {
	Success   bool                  `json:"success"`
	Message   string                `json:"message,omitempty"`
	Delivered int                   `json:"delivered"`
	Results   domain.DeliveryReport `json:"results"`
}
