// Package gateway adapts websocket connections to the presence registry.
// It owns connection lifecycle and inbound events; the registry and the
// dispatcher never see a websocket type.
package gateway

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"notification-hub/auth"
	"notification-hub/contract"
	"notification-hub/domain"
	"notification-hub/domain/event"
	"notification-hub/errors"

	"github.com/coder/websocket"
	"github.com/samber/lo"
)

// Path is the endpoint clients connect to.
const Path = "/notifications"

const defaultReadLimit = 32 << 10

type Options struct {
	// AllowedOrigins lists the cross-origin callers allowed to connect,
	// as full origins ("https://app.example.com") or "*".
	AllowedOrigins []string
	AuthRequired   bool
	BufferSize     int
	IdleTimeout    time.Duration
	ReadLimit      int64
}

type Handler struct {
	log      *slog.Logger
	registry contract.IRegistry
	service  contract.INotificationService
	tokens   *auth.TokenManager
	opts     Options
}

// NewHandler builds the websocket endpoint. tokens may be nil when no
// secret is configured; connections are then anonymous until they join.
func NewHandler(log *slog.Logger, registry contract.IRegistry, service contract.INotificationService, tokens *auth.TokenManager, opts Options) *Handler {
	if opts.BufferSize <= 0 {
		opts.BufferSize = 64
	}
	if opts.ReadLimit <= 0 {
		opts.ReadLimit = defaultReadLimit
	}
	return &Handler{log: log, registry: registry, service: service, tokens: tokens, opts: opts}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, err := h.authenticate(r)
	if err != nil {
		h.log.Warn("Handshake rejected", "remote", r.RemoteAddr, "error", err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: originPatterns(h.opts.AllowedOrigins),
	})
	if err != nil {
		h.log.Warn("Unable to accept websocket connection", "remote", r.RemoteAddr, "error", err)
		return
	}
	conn.SetReadLimit(h.opts.ReadLimit)

	session := newSession(conn, identity, h.opts.BufferSize, h.log)
	h.registry.Connect(session)
	session.log.Info("Client connected", "remote", r.RemoteAddr, "authenticated", identity != nil)

	err = session.run(r.Context(), func(ctx context.Context, data []byte) {
		h.handleFrame(ctx, session, data)
	}, h.opts.IdleTimeout)

	h.registry.OnDisconnect(session.ID())
	switch {
	case stderrors.Is(err, errIdle):
		_ = conn.Close(websocket.StatusPolicyViolation, "idle timeout")
		session.log.Info("Client disconnected", "reason", "idle")
	default:
		_ = conn.Close(websocket.StatusNormalClosure, "")
		session.log.Info("Client disconnected", "reason", closeReason(err))
	}
}

func (h *Handler) authenticate(r *http.Request) (*auth.Identity, error) {
	if h.tokens == nil {
		if h.opts.AuthRequired {
			return nil, errors.ErrUnauthenticated
		}
		return nil, nil
	}
	identity, err := h.tokens.Authenticate(r)
	if err != nil {
		return nil, err
	}
	if identity == nil && h.opts.AuthRequired {
		return nil, errors.ErrUnauthenticated
	}
	return identity, nil
}

// handleFrame answers one inbound frame. Every failure is reported to the
// client as an error frame and the connection stays open.
func (h *Handler) handleFrame(ctx context.Context, s *Session, data []byte) {
	env, err := event.Decode(data)
	if err != nil {
		s.reply(ctx, event.Error, event.ErrorPayload{Message: err.Error()})
		return
	}
	if err := h.handleEvent(ctx, s, env); err != nil {
		s.log.Debug("Event rejected", "event", env.Event, "error", err)
		s.reply(ctx, event.Error, event.ErrorPayload{Event: env.Event, Message: err.Error()})
	}
}

func (h *Handler) handleEvent(ctx context.Context, s *Session, env event.Envelope) error {
	switch env.Event {
	case event.Join:
		var p event.JoinPayload
		if err := event.DecodePayload(env, &p); err != nil {
			return err
		}
		userID := domain.UserID(p.UserID)
		if s.identity != nil && s.identity.UserID != userID {
			return errors.ErrIdentityMismatch
		}
		if err := h.registry.Join(s.ID(), userID); err != nil {
			return err
		}
		s.log.Info("User joined notifications room", "user_id", userID)
		s.reply(ctx, event.Joined, event.JoinedPayload{
			Message: "Successfully joined notifications",
			UserID:  p.UserID,
			Joined:  true,
		})

	case event.JoinRole:
		var p event.RolePayload
		if err := event.DecodePayload(env, &p); err != nil {
			return err
		}
		role := domain.Role(p.Role).Normalize()
		if s.identity != nil && !s.identity.HasRole(role) {
			return errors.ErrIdentityMismatch
		}
		if err := h.registry.JoinRole(s.ID(), role); err != nil {
			return err
		}
		s.log.Info("Client joined role room", "role", role)

	case event.LeaveRole:
		var p event.RolePayload
		if err := event.DecodePayload(env, &p); err != nil {
			return err
		}
		h.registry.LeaveRole(s.ID(), domain.Role(p.Role))

	case event.Leave:
		var p event.JoinPayload
		if err := event.DecodePayload(env, &p); err != nil {
			return err
		}
		h.registry.Leave(s.ID(), domain.UserID(p.UserID))
		s.log.Info("User left notifications room", "user_id", p.UserID)

	case event.MarkRead:
		var p event.MarkReadPayload
		if err := event.DecodePayload(env, &p); err != nil {
			return err
		}
		userID, err := h.joinedUser(s)
		if err != nil {
			return err
		}
		err = h.service.MarkAsRead(userID, p.NotificationID)
		if err != nil {
			s.log.Warn("Unable to mark notification as read",
				"user_id", userID, "notification_id", p.NotificationID, "error", err)
		}
		s.reply(ctx, event.NotificationRead, event.NotificationReadPayload{
			NotificationID: p.NotificationID,
			Success:        err == nil,
		})

	case event.GetUnreadCount:
		userID, err := h.joinedUser(s)
		if err != nil {
			return err
		}
		count, err := h.service.UnreadCount(userID)
		if err != nil {
			return err
		}
		s.reply(ctx, event.UnreadCount, event.UnreadCountPayload{UserID: string(userID), Count: count})

	case event.Ping:
		s.reply(ctx, event.Pong, nil)

	default:
		return errors.ErrUnknownEvent
	}
	return nil
}

func (h *Handler) joinedUser(s *Session) (domain.UserID, error) {
	userID, ok := h.registry.UserOf(s.ID())
	if !ok {
		return "", errors.ErrNotJoined
	}
	return userID, nil
}

// originPatterns turns configured origins into the host patterns
// websocket.Accept matches the Origin header against.
func originPatterns(origins []string) []string {
	return lo.FilterMap(origins, func(origin string, _ int) (string, bool) {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			return "", false
		}
		if origin == "*" {
			return "*", true
		}
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			return origin, true
		}
		return u.Host, true
	})
}

func closeReason(err error) string {
	if status := websocket.CloseStatus(err); status != -1 {
		return status.String()
	}
	if err == nil {
		return "closed"
	}
	return err.Error()
}
