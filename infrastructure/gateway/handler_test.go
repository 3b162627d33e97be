package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"notification-hub/auth"
	"notification-hub/domain"
	"notification-hub/domain/event"
	"notification-hub/mocks"
	"notification-hub/runtime"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testGateway struct {
	url        string
	registry   *runtime.Registry
	dispatcher *runtime.Dispatcher
	service    *mocks.MockINotificationService
}

func newTestGateway(t *testing.T, tokens *auth.TokenManager, opts Options) *testGateway {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelError)
	registry := runtime.NewRegistry(log)
	service := mocks.NewMockINotificationService(gomock.NewController(t))

	mux := http.NewServeMux()
	mux.Handle(Path, NewHandler(log, registry, service, tokens, opts))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testGateway{
		url:        "ws" + strings.TrimPrefix(server.URL, "http") + Path,
		registry:   registry,
		dispatcher: runtime.NewDispatcher(log, registry, time.Second),
		service:    service,
	}
}

func (g *testGateway) dial(t *testing.T, header http.Header) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, g.url, &websocket.DialOptions{HTTPHeader: header})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.CloseNow() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, name event.Name, data any) {
	t.Helper()
	frame, err := event.Encode(name, data)
	require.NoError(t, err)
	sendRaw(t, conn, frame)
}

func sendRaw(t *testing.T, conn *websocket.Conn, frame []byte) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, frame))
}

func receive(t *testing.T, conn *websocket.Conn) event.Envelope {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	env, err := event.Decode(data)
	require.NoError(t, err)
	return env
}

func receivePayload[T any](t *testing.T, conn *websocket.Conn, expected event.Name) T {
	t.Helper()
	env := receive(t, conn)
	require.Equal(t, expected, env.Event, string(env.Data))
	var payload T
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	return payload
}

func join(t *testing.T, conn *websocket.Conn, userID string) {
	t.Helper()
	send(t, conn, event.Join, event.JoinPayload{UserID: userID})
	joined := receivePayload[event.JoinedPayload](t, conn, event.Joined)
	require.True(t, joined.Joined)
	require.Equal(t, userID, joined.UserID)
	require.Equal(t, "Successfully joined notifications", joined.Message)
}

func TestGateway_Join_Then_Receive_Notification(t *testing.T) {
	req := require.New(t)
	gw := newTestGateway(t, nil, Options{})
	conn := gw.dial(t, nil)

	// Given a client joined as alice
	join(t, conn, "alice")
	req.True(gw.registry.IsReachable("alice"))

	// When a job match is dispatched to alice
	n := domain.NewNotification("alice", domain.KindJobMatch,
		"New Job Match!", "92% match for Backend Engineer", domain.JobMatchData{JobID: "j-1", MatchScore: 92})
	req.True(gw.dispatcher.SendToUser(context.Background(), "alice", n))

	// Then the client receives it on the notification event
	got := receivePayload[domain.Notification](t, conn, event.Notification)
	req.Equal(n.ID, got.ID)
	req.Equal("New Job Match!", got.Title)
	req.Equal(domain.JobMatchData{JobID: "j-1", MatchScore: 92}, got.Data)
}

func TestGateway_Two_Tabs_Both_Receive(t *testing.T) {
	req := require.New(t)
	gw := newTestGateway(t, nil, Options{})
	laptop := gw.dial(t, nil)
	phone := gw.dial(t, nil)
	join(t, laptop, "alice")
	join(t, phone, "alice")

	n := domain.NewResumeAnalysis("alice", "r-1", 88)
	req.True(gw.dispatcher.SendToUser(context.Background(), "alice", n))

	req.Equal(n.ID, receivePayload[domain.Notification](t, laptop, event.Notification).ID)
	req.Equal(n.ID, receivePayload[domain.Notification](t, phone, event.Notification).ID)
}

func TestGateway_Role_And_Broadcast(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	gw := newTestGateway(t, nil, Options{})
	admin := gw.dial(t, nil)
	student := gw.dial(t, nil)

	send(t, admin, event.JoinRole, event.RolePayload{Role: "admin"})
	send(t, student, event.JoinRole, event.RolePayload{Role: "STUDENT"})
	// join_role has no ack; a ping round trip orders it before the dispatch.
	send(t, admin, event.Ping, nil)
	req.Equal(event.Pong, receive(t, admin).Event)
	send(t, student, event.Ping, nil)
	req.Equal(event.Pong, receive(t, student).Event)

	adminOnly := domain.NewSystemAnnouncement("Admins", "Queue is full", domain.PriorityHigh, nil)
	gw.dispatcher.SendToRole(ctx, domain.RoleAdmin, adminOnly)
	everyone := domain.NewSystemAnnouncement("Maintenance", "Tonight", domain.PriorityLow, nil)
	gw.dispatcher.Broadcast(ctx, everyone)

	// The admin sees both, the student only the broadcast
	req.Equal(adminOnly.ID, receivePayload[domain.Notification](t, admin, event.Notification).ID)
	req.Equal(everyone.ID, receivePayload[domain.Notification](t, admin, event.Broadcast).ID)
	req.Equal(everyone.ID, receivePayload[domain.Notification](t, student, event.Broadcast).ID)
}

func TestGateway_Leave_Stops_Delivery(t *testing.T) {
	req := require.New(t)
	gw := newTestGateway(t, nil, Options{})
	conn := gw.dial(t, nil)
	join(t, conn, "alice")

	send(t, conn, event.Leave, event.JoinPayload{UserID: "alice"})
	send(t, conn, event.Ping, nil)
	req.Equal(event.Pong, receive(t, conn).Event)

	req.False(gw.registry.IsReachable("alice"))
	req.False(gw.dispatcher.SendToUser(context.Background(), "alice", domain.NewResumeAnalysis("alice", "r", 1)))
}

func TestGateway_Bad_Frames_Keep_Connection_Open(t *testing.T) {
	cases := map[string][]byte{
		"not json":        []byte("hello"),
		"no event name":   []byte(`{"data":{}}`),
		"unknown event":   []byte(`{"event":"subscribe"}`),
		"missing user id": []byte(`{"event":"join","data":{}}`),
		"bad mark_read":   []byte(`{"event":"mark_read","data":{"notificationId":"x"}}`),
	}
	gw := newTestGateway(t, nil, Options{})
	conn := gw.dial(t, nil)

	for name, frame := range cases {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			sendRaw(t, conn, frame)
			payload := receivePayload[event.ErrorPayload](t, conn, event.Error)
			req.NotEmpty(payload.Message)

			send(t, conn, event.Ping, nil)
			req.Equal(event.Pong, receive(t, conn).Event)
		})
	}
	require.Equal(t, 1, gw.registry.SessionCount())
}

func TestGateway_Binary_Frame_Is_Rejected(t *testing.T) {
	req := require.New(t)
	gw := newTestGateway(t, nil, Options{})
	conn := gw.dial(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req.NoError(conn.Write(ctx, websocket.MessageBinary, []byte{0x01}))
	req.Equal(event.Error, receive(t, conn).Event)
}

func TestGateway_Disconnect_Removes_Presence(t *testing.T) {
	req := require.New(t)
	gw := newTestGateway(t, nil, Options{})
	conn := gw.dial(t, nil)
	join(t, conn, "alice")

	req.NoError(conn.Close(websocket.StatusNormalClosure, "bye"))

	req.Eventually(func() bool {
		return !gw.registry.IsReachable("alice") && gw.registry.SessionCount() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGateway_Idle_Session_Is_Closed(t *testing.T) {
	req := require.New(t)
	gw := newTestGateway(t, nil, Options{IdleTimeout: 100 * time.Millisecond})
	conn := gw.dial(t, nil)
	join(t, conn, "alice")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, _, err := conn.Read(ctx)
	req.Error(err)
	req.Eventually(func() bool {
		return gw.registry.SessionCount() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGateway_Read_State_Events(t *testing.T) {
	req := require.New(t)
	gw := newTestGateway(t, nil, Options{})
	conn := gw.dial(t, nil)
	notificationID := uuid.NewString()

	t.Run("require a joined user", func(t *testing.T) {
		send(t, conn, event.GetUnreadCount, nil)
		payload := receivePayload[event.ErrorPayload](t, conn, event.Error)
		req.Equal(event.GetUnreadCount, payload.Event)
	})

	join(t, conn, "alice")

	t.Run("mark_read acknowledges", func(t *testing.T) {
		gw.service.EXPECT().MarkAsRead(domain.UserID("alice"), notificationID).Return(nil)
		send(t, conn, event.MarkRead, event.MarkReadPayload{NotificationID: notificationID})
		ack := receivePayload[event.NotificationReadPayload](t, conn, event.NotificationRead)
		req.Equal(notificationID, ack.NotificationID)
		req.True(ack.Success)
	})

	t.Run("get_unread_count answers with the count", func(t *testing.T) {
		gw.service.EXPECT().UnreadCount(domain.UserID("alice")).Return(3, nil)
		send(t, conn, event.GetUnreadCount, nil)
		count := receivePayload[event.UnreadCountPayload](t, conn, event.UnreadCount)
		req.Equal("alice", count.UserID)
		req.Equal(3, count.Count)
	})
}

func TestGateway_Authentication(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	aliceToken, err := tokens.GenerateToken("alice", []domain.Role{domain.RoleStudent})
	require.NoError(t, err)

	t.Run("token in query string, join as self", func(t *testing.T) {
		gw := newTestGateway(t, tokens, Options{AuthRequired: true})
		gw.url += "?token=" + aliceToken
		conn := gw.dial(t, nil)
		join(t, conn, "alice")
	})

	t.Run("bearer header, join as someone else is refused", func(t *testing.T) {
		req := require.New(t)
		gw := newTestGateway(t, tokens, Options{})
		conn := gw.dial(t, http.Header{"Authorization": []string{"Bearer " + aliceToken}})

		send(t, conn, event.Join, event.JoinPayload{UserID: "bob"})
		payload := receivePayload[event.ErrorPayload](t, conn, event.Error)
		req.Equal(event.Join, payload.Event)
		req.False(gw.registry.IsReachable("bob"))
	})

	t.Run("role not carried by the token is refused", func(t *testing.T) {
		req := require.New(t)
		gw := newTestGateway(t, tokens, Options{})
		conn := gw.dial(t, http.Header{"Authorization": []string{"Bearer " + aliceToken}})

		send(t, conn, event.JoinRole, event.RolePayload{Role: "ADMIN"})
		req.Equal(event.Error, receive(t, conn).Event)
		req.Empty(gw.registry.SinksFor(domain.RoleRoom(domain.RoleAdmin)))
	})

	t.Run("missing token with auth required is 401", func(t *testing.T) {
		req := require.New(t)
		gw := newTestGateway(t, tokens, Options{AuthRequired: true})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, resp, err := websocket.Dial(ctx, gw.url, nil)
		req.Error(err)
		req.NotNil(resp)
		req.Equal(http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid token is 401", func(t *testing.T) {
		req := require.New(t)
		gw := newTestGateway(t, tokens, Options{})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, resp, err := websocket.Dial(ctx, gw.url+"?token=garbage", nil)
		req.Error(err)
		req.NotNil(resp)
		req.Equal(http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGateway_Origin_Allow_List(t *testing.T) {
	gw := newTestGateway(t, nil, Options{AllowedOrigins: []string{"http://localhost:3000"}})

	t.Run("allowed origin", func(t *testing.T) {
		gw.dial(t, http.Header{"Origin": []string{"http://localhost:3000"}})
	})

	t.Run("other origin is refused", func(t *testing.T) {
		req := require.New(t)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, resp, err := websocket.Dial(ctx, gw.url, &websocket.DialOptions{
			HTTPHeader: http.Header{"Origin": []string{"http://evil.example"}},
		})
		req.Error(err)
		req.NotNil(resp)
		req.Equal(http.StatusForbidden, resp.StatusCode)
	})
}

func TestOriginPatterns(t *testing.T) {
	require.Equal(t,
		[]string{"localhost:3000", "app.example.com", "*"},
		originPatterns([]string{"http://localhost:3000", " https://app.example.com ", "", "*"}),
	)
}

func TestSession_Deliver_Backpressure_And_Close(t *testing.T) {
	req := require.New(t)
	s := newSession(nil, nil, 1, logs.GetLoggerFromLevel(slog.LevelError))
	ctx := context.Background()

	req.NoError(s.Deliver(ctx, []byte("a")))
	req.ErrorContains(s.Deliver(ctx, []byte("b")), "outbox is full")

	s.close()
	req.Error(s.Deliver(ctx, []byte("c")))
}
