package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoom_Addresses(t *testing.T) {
	req := require.New(t)

	req.Equal(RoomID("user_alice"), UserRoom("alice"))
	req.Equal(RoomID("role_ADMIN"), RoleRoom("admin"))
	req.Equal(RoleRoom(RoleAdmin), RoleRoom(" Admin "))

	req.True(UserRoom("alice").IsUserRoom())
	req.False(UserRoom("alice").IsRoleRoom())
	req.True(RoleRoom(RoleStudent).IsRoleRoom())
}

func TestNewConnectionID_Unique(t *testing.T) {
	req := require.New(t)
	seen := make(map[ConnectionID]struct{})
	for i := 0; i < 100; i++ {
		id := NewConnectionID()
		_, dup := seen[id]
		req.False(dup)
		seen[id] = struct{}{}
	}
}
