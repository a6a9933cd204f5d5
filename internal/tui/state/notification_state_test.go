package state

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationState_AddAndExpire(t *testing.T) {
	s := NewNotificationState()

	first := s.Add(LevelInfo, "Board created", 3*time.Second)
	second := s.Add(LevelError, "board with id 9 not found", 3*time.Second)
	assert.NotEqual(t, first, second)
	require.Len(t, s.All(), 2)

	assert.True(t, s.Expire(first))
	assert.False(t, s.Expire(first), "expiring twice is a no-op")

	require.Len(t, s.All(), 1)
	assert.Equal(t, LevelError, s.All()[0].Level)
	assert.True(t, s.HasAny())

	s.Clear()
	assert.False(t, s.HasAny())
}

func TestNotificationState_Prune(t *testing.T) {
	s := NewNotificationState()
	s.Add(LevelInfo, "short", time.Millisecond)
	s.Add(LevelInfo, "long", time.Hour)

	s.Prune(time.Now().Add(time.Second))

	require.Len(t, s.All(), 1)
	assert.Equal(t, "long", s.All()[0].Message)
}

func TestNotificationState_GetLayers(t *testing.T) {
	s := NewNotificationState()
	s.Add(LevelInfo, "one", time.Hour)
	s.Add(LevelInfo, "two", time.Hour)

	render := func(n Notification) string { return strings.ToUpper(n.Message) }

	// No window size yet
	assert.Empty(t, s.GetLayers(render))

	s.SetWindowSize(80, 24)
	assert.Len(t, s.GetLayers(render), 2)

	// Too short to fit the second toast
	s.SetWindowSize(80, 2)
	assert.Len(t, s.GetLayers(render), 1)
}
