// Package domain contains core concepts of the notification hub.
// This file defines the identities a live session can be addressed by.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

type UserID string

func (u UserID) String() string { return string(u) }

// ConnectionID is assigned by the transport when a connection is opened
// and stays unique for the lifetime of that connection.
type ConnectionID string

func NewConnectionID() ConnectionID {
	return ConnectionID(uuid.NewString())
}

func (c ConnectionID) String() string { return string(c) }

type Role string

const (
	RoleStudent   Role = "STUDENT"
	RoleCounselor Role = "COUNSELOR"
	RoleAdmin     Role = "ADMIN"
)

// Normalize upper-cases the role so "admin" and "ADMIN" share one room.
func (r Role) Normalize() Role {
	return Role(strings.ToUpper(strings.TrimSpace(string(r))))
}

// RoomID is a multicast address. A session subscribed to a room receives
// every frame published to it exactly once.
type RoomID string

const (
	userRoomPrefix = "user_"
	roleRoomPrefix = "role_"
)

func UserRoom(userID UserID) RoomID {
	return RoomID(userRoomPrefix + string(userID))
}

func RoleRoom(role Role) RoomID {
	return RoomID(roleRoomPrefix + string(role.Normalize()))
}

func (r RoomID) IsUserRoom() bool { return strings.HasPrefix(string(r), userRoomPrefix) }

func (r RoomID) IsRoleRoom() bool { return strings.HasPrefix(string(r), roleRoomPrefix) }

func (r RoomID) String() string { return string(r) }
