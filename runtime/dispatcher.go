package runtime

import (
	"context"
	"log/slog"
	"time"

	"notification-hub/contract"
	"notification-hub/domain"
	"notification-hub/domain/event"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Dispatcher pushes notifications to the sessions addressed by a target.
// It is stateless between calls and only reads the registry at call time.
//
// A true result means a live session was found and a push was attempted.
// It does not mean the client received the bytes.
type Dispatcher struct {
	log         *slog.Logger
	registry    contract.IRegistry
	sinkTimeout time.Duration
}

func NewDispatcher(log *slog.Logger, registry contract.IRegistry, sinkTimeout time.Duration) *Dispatcher {
	if registry == nil {
		panic("runtime: dispatcher needs a registry")
	}
	return &Dispatcher{log: log, registry: registry, sinkTimeout: sinkTimeout}
}

// SendToUser publishes n once to the user's room, reaching every live
// session of that user. It returns false when the user has none.
func (d *Dispatcher) SendToUser(ctx context.Context, userID domain.UserID, n domain.Notification) bool {
	sinks := d.registry.SinksFor(domain.UserRoom(userID))
	if len(sinks) == 0 {
		d.log.Warn("User not connected for notification", "user_id", userID, "kind", n.Kind)
		return false
	}
	frame, err := event.Encode(event.Notification, n)
	if err != nil {
		d.log.Error("Unable to encode notification", "user_id", userID, "kind", n.Kind, "error", err)
		return false
	}
	d.publish(ctx, domain.UserRoom(userID), sinks, frame)
	d.log.Info("Notification sent to user", "user_id", userID, "kind", n.Kind, "sessions", len(sinks))
	return true
}

// SendToUsers sends the same notification to each user, retargeted per
// recipient. The report follows the order of userIDs.
func (d *Dispatcher) SendToUsers(ctx context.Context, userIDs []domain.UserID, n domain.Notification) domain.DeliveryReport {
	return d.SendEach(ctx, lo.Map(userIDs, func(u domain.UserID, _ int) domain.Notification {
		return n.ForUser(u)
	}))
}

// SendEach delivers every notification to its own TargetUserID, one
// goroutine per recipient so a slow session cannot hold back the others.
func (d *Dispatcher) SendEach(ctx context.Context, notifications []domain.Notification) domain.DeliveryReport {
	report := make(domain.DeliveryReport, len(notifications))
	var g errgroup.Group
	for i, n := range notifications {
		g.Go(func() error {
			report[i] = domain.Delivery{
				UserID:    n.TargetUserID,
				Delivered: d.SendToUser(ctx, n.TargetUserID, n),
			}
			return nil
		})
	}
	_ = g.Wait()
	return report
}

// Broadcast reaches every open connection, joined or not.
func (d *Dispatcher) Broadcast(ctx context.Context, n domain.Notification) {
	frame, err := event.Encode(event.Broadcast, n)
	if err != nil {
		d.log.Error("Unable to encode broadcast", "kind", n.Kind, "error", err)
		return
	}
	sinks := d.registry.AllSinks()
	d.publish(ctx, "*", sinks, frame)
	d.log.Info("Broadcast notification sent", "kind", n.Kind, "sessions", len(sinks))
}

// SendToRole publishes to the role room. Sessions that never joined it
// receive nothing and no count is reported.
func (d *Dispatcher) SendToRole(ctx context.Context, role domain.Role, n domain.Notification) {
	frame, err := event.Encode(event.Notification, n)
	if err != nil {
		d.log.Error("Unable to encode role notification", "role", role, "kind", n.Kind, "error", err)
		return
	}
	room := domain.RoleRoom(role)
	d.publish(ctx, room, d.registry.SinksFor(room), frame)
	d.log.Info("Notification sent to role", "role", role.Normalize(), "kind", n.Kind)
}

// publish hands the frame to each sink in turn. Sinks only enqueue, so a
// sequential loop keeps per-session call order. Failures are logged and
// never reported back.
func (d *Dispatcher) publish(ctx context.Context, room domain.RoomID, sinks []contract.SessionSink, frame []byte) {
	for _, sink := range sinks {
		sinkCtx, cancel := d.sinkContext(ctx)
		if err := sink.Deliver(sinkCtx, frame); err != nil {
			d.log.Warn("Push to session failed",
				"room", room, "connection_id", sink.ID(), "error", err)
		}
		cancel()
	}
}

func (d *Dispatcher) sinkContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.sinkTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.sinkTimeout)
}
