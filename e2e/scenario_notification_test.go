package e2e

import (
	"net/http"
	"testing"

	"notification-hub/domain"
	"notification-hub/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type testNotificationSuite struct {
	BaseSuite
}

func TestNotificationSuite(t *testing.T) {
	suite.Run(t, &testNotificationSuite{})
}

func (s *testNotificationSuite) TestCreateDeliverAndMarkRead() {
	userID := domain.UserID("e2e-" + uuid.NewString())
	userToken := s.Token(userID, domain.RoleStudent)
	adminToken := s.Token("e2e-admin", domain.RoleAdmin)

	s.Step("Step 1: Two tabs join the user room")
	tabs := []*Client{s.Connect(userToken), s.Connect(userToken)}
	for _, tab := range tabs {
		tab.Send(event.Join, event.JoinPayload{UserID: string(userID)})
		var joined event.JoinedPayload
		tab.Expect(event.Joined, &joined)
		s.Require().True(joined.Joined)
	}

	s.Step("Step 2: Admin creates a job match")
	var created struct {
		Success   bool `json:"success"`
		Delivered bool `json:"delivered"`
	}
	status := s.Call(http.MethodPost, "/notifications", adminToken, map[string]any{
		"userId":  userID,
		"type":    domain.KindJobMatch,
		"title":   "New Job Match!",
		"message": "You have a 91% match with Backend Engineer at Acme",
		"data":    domain.JobMatchData{JobID: "job-1", MatchScore: 91},
	}, &created)
	s.Require().Equal(http.StatusCreated, status)
	s.Require().True(created.Delivered)

	s.Step("Step 3: Every tab receives the notification")
	var received domain.Notification
	for _, tab := range tabs {
		tab.Expect(event.Notification, &received)
		s.Require().Equal(domain.KindJobMatch, received.Kind)
		s.Require().Equal(domain.JobMatchData{JobID: "job-1", MatchScore: 91}, received.Data)
	}

	s.Step("Step 4: Mark it read over the socket")
	tabs[0].Send(event.MarkRead, event.MarkReadPayload{NotificationID: received.ID.String()})
	var read event.NotificationReadPayload
	tabs[0].Expect(event.NotificationRead, &read)
	s.Require().True(read.Success)

	tabs[0].Send(event.GetUnreadCount, nil)
	var unread event.UnreadCountPayload
	tabs[0].Expect(event.UnreadCount, &unread)
	s.Require().Zero(unread.Count)

	s.Step("Step 5: The REST listing agrees")
	var list struct {
		Total       int `json:"total"`
		UnreadCount int `json:"unreadCount"`
	}
	s.Require().Equal(http.StatusOK, s.Call(http.MethodGet, "/notifications", userToken, nil, &list))
	s.Require().Equal(1, list.Total)
	s.Require().Zero(list.UnreadCount)
}

func (s *testNotificationSuite) TestRoleBroadcast() {
	counselor := domain.UserID("e2e-" + uuid.NewString())
	token := s.Token(counselor, domain.RoleCounselor)
	adminToken := s.Token("e2e-admin", domain.RoleAdmin)

	s.Step("Step 1: A counselor joins the COUNSELOR room")
	client := s.Connect(token)
	client.Send(event.Join, event.JoinPayload{UserID: string(counselor)})
	client.Expect(event.Joined, nil)
	client.Send(event.JoinRole, event.RolePayload{Role: "counselor"})
	// join_role has no ack, a ping round trip orders it before the push
	client.Send(event.Ping, nil)
	client.Expect(event.Pong, nil)

	s.Step("Step 2: Admin notifies the role")
	status := s.Call(http.MethodPost, "/notifications/role/COUNSELOR", adminToken, map[string]any{
		"type":    domain.KindSystemAnnouncement,
		"title":   "Maintenance",
		"message": "Dashboards are read-only tonight",
	}, nil)
	s.Require().Equal(http.StatusCreated, status)

	var received domain.Notification
	client.Expect(event.Notification, &received)
	s.Require().Equal("Maintenance", received.Title)
}
