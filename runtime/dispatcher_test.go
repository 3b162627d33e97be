package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"notification-hub/contract"
	"notification-hub/domain"
	"notification-hub/domain/event"
	"notification-hub/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDispatcher(registry contract.IRegistry) *Dispatcher {
	return NewDispatcher(logs.GetLoggerFromLevel(slog.LevelError), registry, 50*time.Millisecond)
}

func connectAs(t *testing.T, registry *Registry, userID domain.UserID) *recordingSink {
	t.Helper()
	sink := newRecordingSink()
	registry.Connect(sink)
	require.NoError(t, registry.Join(sink.ID(), userID))
	return sink
}

func TestDispatcher_SendToUser_EndToEnd(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	dispatcher := newTestDispatcher(registry)
	ctx := context.Background()

	// Given c1 connected and joined as alice
	c1 := connectAs(t, registry, "alice")
	n := domain.NewNotification("alice", domain.KindJobMatch,
		"New Job Match!", "92% match for Backend Engineer", domain.JobMatchData{JobID: "j-1", MatchScore: 92})

	// When a job match is sent to alice
	delivered := dispatcher.SendToUser(ctx, "alice", n)

	// Then c1 receives exactly that payload
	req.True(delivered)
	frames := c1.received(t)
	req.Len(frames, 1)
	req.Equal(event.Notification, frames[0].Event)
	req.Equal(n.ID, frames[0].Notification.ID)
	req.Equal("New Job Match!", frames[0].Notification.Title)
	req.Equal("92% match for Backend Engineer", frames[0].Notification.Body)
	req.Equal(domain.KindJobMatch, frames[0].Notification.Kind)

	// When c1 disconnects, the same call reports not delivered
	registry.OnDisconnect(c1.ID())
	req.False(dispatcher.SendToUser(ctx, "alice", n))
	req.Len(c1.received(t), 1)
}

func TestDispatcher_SendToUser_Every_Session_Once(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	dispatcher := newTestDispatcher(registry)

	laptop := connectAs(t, registry, "alice")
	phone := connectAs(t, registry, "alice")
	// Joining twice must not subscribe twice
	req.NoError(registry.Join(phone.ID(), "alice"))
	other := connectAs(t, registry, "bob")

	req.True(dispatcher.SendToUser(context.Background(), "alice",
		domain.NewResumeAnalysis("alice", "r-1", 77)))

	req.Len(laptop.received(t), 1)
	req.Len(phone.received(t), 1)
	req.Empty(other.received(t))
}

func TestDispatcher_SendToUser_Unreachable_Has_No_Side_Effect(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	dispatcher := newTestDispatcher(registry)
	bystander := connectAs(t, registry, "bob")

	delivered := dispatcher.SendToUser(context.Background(), "nobody",
		domain.NewResumeAnalysis("nobody", "r-1", 50))

	req.False(delivered)
	req.Empty(bystander.received(t))
	req.False(registry.IsReachable("nobody"))
	req.Equal([]domain.UserID{"bob"}, registry.ConnectedUserIDs())
	requireConsistent(t, registry)
}

func TestDispatcher_SendToUser_Keeps_Call_Order(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	dispatcher := newTestDispatcher(registry)
	sink := connectAs(t, registry, "alice")

	var sent []string
	for i := 0; i < 20; i++ {
		n := domain.NewNotification("alice", domain.KindCounselorMessage, fmt.Sprintf("msg-%d", i), "", nil)
		sent = append(sent, n.Title)
		req.True(dispatcher.SendToUser(context.Background(), "alice", n))
	}

	var got []string
	for _, f := range sink.received(t) {
		got = append(got, f.Notification.Title)
	}
	req.Equal(sent, got)
}

func TestDispatcher_SendToUsers_Preserves_Order(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	dispatcher := newTestDispatcher(registry)
	s1 := connectAs(t, registry, "u1")
	s3 := connectAs(t, registry, "u3")

	template := domain.NewSystemAnnouncement("Maintenance", "Tonight at 2am", domain.PriorityHigh, nil)
	report := dispatcher.SendToUsers(context.Background(), []domain.UserID{"u1", "u2", "u3"}, template)

	req.Equal(domain.DeliveryReport{
		{UserID: "u1", Delivered: true},
		{UserID: "u2", Delivered: false},
		{UserID: "u3", Delivered: true},
	}, report)

	// Each recipient sees a copy addressed to itself
	req.Equal(domain.UserID("u1"), s1.received(t)[0].Notification.TargetUserID)
	req.Equal(domain.UserID("u3"), s3.received(t)[0].Notification.TargetUserID)
}

func TestDispatcher_SendEach_Failing_Sink_Does_Not_Affect_Others(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	dispatcher := newTestDispatcher(registry)
	broken := connectAs(t, registry, "u1")
	broken.err = fmt.Errorf("socket half-open")
	healthy := connectAs(t, registry, "u2")

	report := dispatcher.SendEach(context.Background(), []domain.Notification{
		domain.NewResumeAnalysis("u1", "r1", 10),
		domain.NewResumeAnalysis("u2", "r2", 20),
	})

	// A push failure is invisible at this layer: the attempt counts
	req.Equal(domain.DeliveryReport{{UserID: "u1", Delivered: true}, {UserID: "u2", Delivered: true}}, report)
	req.Len(healthy.received(t), 1)
}

func TestDispatcher_SendToRole(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	dispatcher := newTestDispatcher(registry)

	// Given c1 in ADMIN and c2 in STUDENT
	c1, c2 := newRecordingSink(), newRecordingSink()
	registry.Connect(c1)
	registry.Connect(c2)
	req.NoError(registry.JoinRole(c1.ID(), domain.RoleAdmin))
	req.NoError(registry.JoinRole(c2.ID(), domain.RoleStudent))

	// When notifying ADMIN
	dispatcher.SendToRole(context.Background(), domain.RoleAdmin,
		domain.NewSystemAnnouncement("Audit", "Quarterly audit", domain.PriorityLow, nil))

	// Then only c1 receives it
	req.Len(c1.received(t), 1)
	req.Equal(event.Notification, c1.received(t)[0].Event)
	req.Empty(c2.received(t))
}

func TestDispatcher_Broadcast_Reaches_Every_Connection(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	dispatcher := newTestDispatcher(registry)

	joined := connectAs(t, registry, "alice")
	anonymous := newRecordingSink()
	registry.Connect(anonymous)

	dispatcher.Broadcast(context.Background(),
		domain.NewSystemAnnouncement("Welcome", "New term starts", domain.PriorityMedium, nil))

	for _, s := range []*recordingSink{joined, anonymous} {
		frames := s.received(t)
		req.Len(frames, 1)
		req.Equal(event.Broadcast, frames[0].Event)
	}
}

func TestDispatcher_Push_Error_Is_Logged_Not_Returned(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockSink := mocks.NewMockSessionSink(ctrl)

	// Given a registry resolving one session whose push fails
	mockRegistry.EXPECT().SinksFor(domain.UserRoom("alice")).
		Return([]contract.SessionSink{mockSink}).Times(1)
	mockSink.EXPECT().ID().Return(domain.ConnectionID("c1")).AnyTimes()
	mockSink.EXPECT().Deliver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, frame []byte) error {
			_, hasDeadline := ctx.Deadline()
			req.True(hasDeadline)
			return fmt.Errorf("broken pipe")
		}).Times(1)

	dispatcher := newTestDispatcher(mockRegistry)

	// Then the attempt still counts as delivered
	req.True(dispatcher.SendToUser(context.Background(), "alice",
		domain.NewResumeAnalysis("alice", "r", 1)))
}

func TestNewDispatcher_Without_Registry_Panics(t *testing.T) {
	require.Panics(t, func() {
		NewDispatcher(logs.GetLoggerFromLevel(slog.LevelError), nil, time.Second)
	})
}
