package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"notification-hub/auth"
	"notification-hub/domain"
	"notification-hub/domain/event"
	"notification-hub/errors"

	"github.com/coder/websocket"
	"golang.org/x/sync/errgroup"
)

const writeTimeout = 10 * time.Second

// Session is one open websocket connection. It is the registry's sink for
// that connection: Deliver only enqueues, a dedicated loop writes.
type Session struct {
	id       domain.ConnectionID
	conn     *websocket.Conn
	log      *slog.Logger
	identity *auth.Identity

	outbox    chan []byte
	done      chan struct{}
	closeOnce sync.Once
	lastRead  atomic.Int64
}

func newSession(conn *websocket.Conn, identity *auth.Identity, bufferSize int, log *slog.Logger) *Session {
	id := domain.NewConnectionID()
	s := &Session{
		id:       id,
		conn:     conn,
		log:      log.With("connection_id", id),
		identity: identity,
		outbox:   make(chan []byte, bufferSize),
		done:     make(chan struct{}),
	}
	s.touch()
	return s
}

func (s *Session) ID() domain.ConnectionID { return s.id }

// Deliver queues frame for writing. A full outbox drops the frame.
func (s *Session) Deliver(ctx context.Context, frame []byte) error {
	select {
	case <-s.done:
		return errors.ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	select {
	case s.outbox <- frame:
		return nil
	default:
		return fmt.Errorf("%w: %d frames pending", errors.ErrBackpressure, len(s.outbox))
	}
}

// reply sends a frame to this session only.
func (s *Session) reply(ctx context.Context, name event.Name, payload any) {
	frame, err := event.Encode(name, payload)
	if err != nil {
		s.log.Error("Unable to encode reply", "event", name, "error", err)
		return
	}
	if err := s.Deliver(ctx, frame); err != nil {
		s.log.Warn("Reply dropped", "event", name, "error", err)
	}
}

func (s *Session) touch() {
	s.lastRead.Store(time.Now().UnixNano())
}

func (s *Session) idleFor(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastRead.Load()))
}

func (s *Session) close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// run blocks until the connection ends. The first loop to stop cancels
// the others.
func (s *Session) run(ctx context.Context, onFrame func(ctx context.Context, data []byte), idleTimeout time.Duration) error {
	defer s.close()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return s.readLoop(ctx, onFrame) })
	eg.Go(func() error { return s.writeLoop(ctx) })
	eg.Go(func() error { return s.idleLoop(ctx, idleTimeout) })
	return eg.Wait()
}

func (s *Session) readLoop(ctx context.Context, onFrame func(ctx context.Context, data []byte)) error {
	for {
		msgType, data, err := s.conn.Read(ctx)
		if err != nil {
			return err
		}
		s.touch()
		if msgType != websocket.MessageText {
			s.reply(ctx, event.Error, event.ErrorPayload{Message: "only text frames are accepted"})
			continue
		}
		s.log.Debug("Frame received", "size", len(data))
		onFrame(ctx, data)
	}
}

func (s *Session) writeLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case frame := <-s.outbox:
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := s.conn.Write(writeCtx, websocket.MessageText, frame)
			cancel()
			if err != nil {
				return fmt.Errorf("write: %w", err)
			}
		}
	}
}

var errIdle = fmt.Errorf("session idle")

func (s *Session) idleLoop(ctx context.Context, idleTimeout time.Duration) error {
	if idleTimeout <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}
	ticker := time.NewTicker(max(idleTimeout/4, 10*time.Millisecond))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if s.idleFor(now) > idleTimeout {
				return errIdle
			}
		}
	}
}
