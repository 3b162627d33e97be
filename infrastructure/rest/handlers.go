package rest

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"notification-hub/contract"
	"notification-hub/domain"
	"notification-hub/errors"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// NotificationHandler serves the notification endpoints. Every route acts on
// behalf of the identity set by RequireIdentity.
type NotificationHandler struct {
	log      *slog.Logger
	service  contract.INotificationService
	registry contract.IRegistry
}

func NewNotificationHandler(log *slog.Logger, service contract.INotificationService, registry contract.IRegistry) *NotificationHandler {
	return &NotificationHandler{log: log, service: service, registry: registry}
}

// Health is GET /api/v1/health.
func (h *NotificationHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"sessions":       h.registry.SessionCount(),
		"connectedUsers": h.registry.ConnectedUserCount(),
	})
}

// List is GET /notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	q.Page = max(q.Page, 1)
	if q.Limit == 0 {
		q.Limit = 20
	}
	userID := mustIdentity(c).UserID
	records, total, unread, err := h.service.ListNotifications(userID, contract.ListOptions{
		Page:       q.Page,
		Limit:      q.Limit,
		UnreadOnly: q.UnreadOnly,
		Category:   domain.Category(q.Category),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{
		Notifications: records,
		Total:         total,
		UnreadCount:   unread,
		Page:          q.Page,
		Limit:         q.Limit,
	})
}

// Stats is GET /notifications/stats.
func (h *NotificationHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(mustIdentity(c).UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// MarkAsRead is PUT /notifications/:id/read.
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	if err := h.service.MarkAsRead(mustIdentity(c).UserID, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, actionResponse{Success: true, Message: "Notification marked as read"})
}

// MarkAllAsRead is PUT /notifications/read-all.
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	updated, err := h.service.MarkAllAsRead(mustIdentity(c).UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All notifications marked as read",
		"updated": updated,
	})
}

// Delete is DELETE /notifications/:id.
func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteNotification(mustIdentity(c).UserID, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, actionResponse{Success: true, Message: "Notification deleted"})
}

// SendTest is POST /notifications/test: a notification to the caller, filed
// under the test category.
func (h *NotificationHandler) SendTest(c *gin.Context) {
	var body testRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	kind, err := domain.ParseKind(body.Type)
	if err != nil {
		badRequest(c, err)
		return
	}
	userID := mustIdentity(c).UserID
	n := domain.NewNotification(userID, kind, body.Title, body.Message, nil).
		WithCategory(domain.CategoryTest)
	delivered, err := h.service.CreateNotification(c.Request.Context(), n)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Test notification sent",
		"delivered": delivered,
	})
}

// Create is POST /notifications: one notification for one user.
func (h *NotificationHandler) Create(c *gin.Context) {
	var body createRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	n, err := body.build(domain.UserID(body.UserID))
	if err != nil {
		badRequest(c, err)
		return
	}
	delivered, err := h.service.CreateNotification(c.Request.Context(), n)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"id":        n.ID,
		"delivered": delivered,
	})
}

// Bulk is POST /notifications/bulk.
func (h *NotificationHandler) Bulk(c *gin.Context) {
	var body bulkRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	template, err := body.build("")
	if err != nil {
		badRequest(c, err)
		return
	}
	report, err := h.service.NotifyUsers(c.Request.Context(), userIDs(body.UserIDs), template)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, deliveryResponse{
		Success:   true,
		Delivered: report.DeliveredCount(),
		Results:   report,
	})
}

// Announcement is POST /notifications/announcement. Without userIds the
// announcement goes to every open connection.
func (h *NotificationHandler) Announcement(c *gin.Context) {
	var body announcementRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	announcement := domain.NewSystemAnnouncement(body.Title, body.Message,
		domain.ParsePriority(body.Priority), body.Data)
	report, err := h.service.SendSystemAnnouncement(c.Request.Context(), userIDs(body.UserIDs), announcement)
	if err != nil {
		h.fail(c, err)
		return
	}
	message := "Announcement broadcast to all connected users"
	if len(body.UserIDs) > 0 {
		message = fmt.Sprintf("Announcement sent to %d users", len(body.UserIDs))
	}
	c.JSON(http.StatusCreated, deliveryResponse{
		Success:   true,
		Message:   message,
		Delivered: report.DeliveredCount(),
		Results:   report,
	})
}

// NotifyRole is POST /notifications/role/:role.
func (h *NotificationHandler) NotifyRole(c *gin.Context) {
	var body notificationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	n, err := body.build("")
	if err != nil {
		badRequest(c, err)
		return
	}
	role := domain.Role(c.Param("role")).Normalize()
	if err := h.service.NotifyRole(c.Request.Context(), role, n); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, actionResponse{
		Success: true,
		Message: fmt.Sprintf("Notification sent to role %s", role),
	})
}

func userIDs(ids []string) []domain.UserID {
	return lo.Map(ids, func(id string, _ int) domain.UserID { return domain.UserID(id) })
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
}

func (h *NotificationHandler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrNotificationNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrInvalidKind), stderrors.Is(err, errors.ErrMissingRecipient):
		return http.StatusBadRequest
	case stderrors.Is(err, errors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
