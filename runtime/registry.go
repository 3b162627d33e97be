// Package runtime holds the in-memory presence state and the fan-out of
// notifications to live sessions. It owns no persistent state.
package runtime

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"notification-hub/contract"
	"notification-hub/domain"
	"notification-hub/errors"

	"github.com/samber/lo"
)

type Set map[domain.ConnectionID]struct{}

type session struct {
	sink  contract.SessionSink
	user  domain.UserID
	rooms map[domain.RoomID]struct{}
}

// Registry maps users to their live sessions and rooms to their subscribers.
//
// Invariants, held under mu:
//   - users[u] exists iff at least one session is joined under u.
//   - rooms[r] exists iff at least one session is subscribed to r.
//   - rooms[UserRoom(u)] and users[u] hold the same connections.
//   - a session is joined under at most one user.
type Registry struct {
	mu       sync.RWMutex
	log      *slog.Logger
	sessions map[domain.ConnectionID]*session
	users    map[domain.UserID]Set
	rooms    map[domain.RoomID]Set
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:      log,
		sessions: make(map[domain.ConnectionID]*session),
		users:    make(map[domain.UserID]Set),
		rooms:    make(map[domain.RoomID]Set),
	}
}

// Connect registers an opened, still unauthenticated connection.
func (r *Registry) Connect(sink contract.SessionSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[sink.ID()]; ok {
		s.sink = sink
		return
	}
	r.sessions[sink.ID()] = &session{sink: sink, rooms: make(map[domain.RoomID]struct{})}
	r.log.Debug("Session connected", "connection_id", sink.ID())
}

// Join associates the connection with userID and subscribes it to the
// user's room. Other sessions of the same user are kept. A connection
// already joined under another user is moved.
func (r *Registry) Join(connID domain.ConnectionID, userID domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[connID]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnknownConnection, connID)
	}
	if s.user == userID {
		return nil
	}
	if s.user != "" {
		r.detach(connID, s)
	}

	s.user = userID
	if _, ok := r.users[userID]; !ok {
		r.users[userID] = make(Set)
	}
	r.users[userID][connID] = struct{}{}
	r.subscribe(connID, s, domain.UserRoom(userID))

	r.log.Debug("Session joined user room",
		"connection_id", connID, "user_id", userID, "sessions", len(r.users[userID]))
	return nil
}

// JoinRole subscribes the connection to a role room. It does not need the
// connection to have joined a user room.
func (r *Registry) JoinRole(connID domain.ConnectionID, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[connID]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnknownConnection, connID)
	}
	r.subscribe(connID, s, domain.RoleRoom(role))
	r.log.Debug("Session joined role room", "connection_id", connID, "role", role.Normalize())
	return nil
}

func (r *Registry) LeaveRole(connID domain.ConnectionID, role domain.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[connID]; ok {
		r.unsubscribe(connID, s, domain.RoleRoom(role))
	}
}

// Leave removes the association between connID and userID.
// Leaving an association that does not exist is a no-op.
func (r *Registry) Leave(connID domain.ConnectionID, userID domain.UserID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[connID]
	if !ok || s.user != userID {
		return
	}
	r.detach(connID, s)
	r.log.Debug("Session left user room", "connection_id", connID, "user_id", userID)
}

// OnDisconnect forgets the connection. The owning user, if any, is found
// from the connection itself.
func (r *Registry) OnDisconnect(connID domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[connID]
	if !ok {
		return
	}
	user := s.user
	if user != "" {
		r.detach(connID, s)
	}
	for room := range s.rooms {
		r.unsubscribe(connID, s, room)
	}
	delete(r.sessions, connID)
	r.log.Debug("Session disconnected", "connection_id", connID, "user_id", user)
}

func (r *Registry) UserOf(connID domain.ConnectionID) (domain.UserID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[connID]
	if !ok || s.user == "" {
		return "", false
	}
	return s.user, true
}

func (r *Registry) IsReachable(userID domain.UserID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[userID]
	return ok
}

// ReachableSessionCount counts sessions joined under some user.
func (r *Registry) ReachableSessionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.SumBy(lo.Values(r.users), func(s Set) int { return len(s) })
}

func (r *Registry) ConnectedUserCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func (r *Registry) ConnectedUserIDs() []domain.UserID {
	r.mu.RLock()
	ids := lo.Keys(r.users)
	r.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// SessionCount counts every open connection, joined or not.
func (r *Registry) SessionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// SinksFor returns a snapshot of the sessions subscribed to room.
// Each session appears once.
func (r *Registry) SinksFor(room domain.RoomID) []contract.SessionSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.rooms[room]
	if !ok {
		return nil
	}
	sinks := make([]contract.SessionSink, 0, len(members))
	for connID := range members {
		if s, exists := r.sessions[connID]; exists {
			sinks = append(sinks, s.sink)
		}
	}
	return sinks
}

func (r *Registry) AllSinks() []contract.SessionSink {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.MapToSlice(r.sessions, func(_ domain.ConnectionID, s *session) contract.SessionSink {
		return s.sink
	})
}

// Reset drops every session. Used between test cases and on shutdown.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = make(map[domain.ConnectionID]*session)
	r.users = make(map[domain.UserID]Set)
	r.rooms = make(map[domain.RoomID]Set)
}

// detach removes s from its user. Caller holds mu.
func (r *Registry) detach(connID domain.ConnectionID, s *session) {
	if members, ok := r.users[s.user]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(r.users, s.user)
		}
	}
	r.unsubscribe(connID, s, domain.UserRoom(s.user))
	s.user = ""
}

// subscribe and unsubscribe keep rooms free of empty sets. Caller holds mu.
func (r *Registry) subscribe(connID domain.ConnectionID, s *session, room domain.RoomID) {
	if _, ok := r.rooms[room]; !ok {
		r.rooms[room] = make(Set)
	}
	r.rooms[room][connID] = struct{}{}
	s.rooms[room] = struct{}{}
}

func (r *Registry) unsubscribe(connID domain.ConnectionID, s *session, room domain.RoomID) {
	delete(s.rooms, room)
	members, ok := r.rooms[room]
	if !ok {
		return
	}
	delete(members, connID)
	if len(members) == 0 {
		delete(r.rooms, room)
	}
}
