package runtime

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"notification-hub/domain"
	"notification-hub/domain/event"

	"github.com/stretchr/testify/require"
)

// recordingSink keeps every frame it is handed.
type recordingSink struct {
	id     domain.ConnectionID
	mu     sync.Mutex
	frames [][]byte
	err    error
}

func newRecordingSink() *recordingSink {
	return &recordingSink{id: domain.NewConnectionID()}
}

func (s *recordingSink) ID() domain.ConnectionID { return s.id }

func (s *recordingSink) Deliver(_ context.Context, frame []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, frame)
	return s.err
}

func (s *recordingSink) received(t *testing.T) []receivedFrame {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]receivedFrame, 0, len(s.frames))
	for _, f := range s.frames {
		env, err := event.Decode(f)
		require.NoError(t, err)
		var n domain.Notification
		require.NoError(t, json.Unmarshal(env.Data, &n))
		res = append(res, receivedFrame{Event: env.Event, Notification: n})
	}
	return res
}

type receivedFrame struct {
	Event        event.Name
	Notification domain.Notification
}

func sinkIDs[S interface{ ID() domain.ConnectionID }](sinks []S) []domain.ConnectionID {
	ids := make([]domain.ConnectionID, 0, len(sinks))
	for _, s := range sinks {
		ids = append(ids, s.ID())
	}
	return ids
}
