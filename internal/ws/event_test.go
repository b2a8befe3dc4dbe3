package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent(t *testing.T) {
	t.Run("hint", func(t *testing.T) {
		event, err := DecodeEvent([]byte(`{"type":"hint","hintText":"Check the logs"}`))

		require.NoError(t, err)
		assert.Equal(t, HintEvent{HintText: "Check the logs"}, event)
	})

	t.Run("lock", func(t *testing.T) {
		event, err := DecodeEvent([]byte(`{"type":"lock","team_name":"alpha"}`))

		require.NoError(t, err)
		assert.Equal(t, LockEvent{TeamName: "alpha", Lock: true}, event)
	})

	t.Run("unlock", func(t *testing.T) {
		event, err := DecodeEvent([]byte(`{"type":"unlock","team_name":"alpha"}`))

		require.NoError(t, err)
		assert.Equal(t, LockEvent{TeamName: "alpha", Lock: false}, event)
	})

	t.Run("lock_all", func(t *testing.T) {
		event, err := DecodeEvent([]byte(`{"type":"lock_all"}`))

		require.NoError(t, err)
		assert.Equal(t, LockAllEvent{Lock: true}, event)
	})

	t.Run("unlock_all", func(t *testing.T) {
		event, err := DecodeEvent([]byte(`{"type":"unlock_all"}`))

		require.NoError(t, err)
		assert.Equal(t, LockAllEvent{Lock: false}, event)
	})

	t.Run("non-string hint text", func(t *testing.T) {
		event, err := DecodeEvent([]byte(`{"type":"hint","hintText":123}`))

		require.NoError(t, err)
		assert.Equal(t, HintEvent{HintText: ""}, event)
	})

	t.Run("missing hint text", func(t *testing.T) {
		event, err := DecodeEvent([]byte(`{"type":"hint"}`))

		require.NoError(t, err)
		assert.Equal(t, HintEvent{HintText: ""}, event)
	})

	t.Run("unknown type", func(t *testing.T) {
		event, err := DecodeEvent([]byte(`{"type":"leaderboard"}`))

		require.NoError(t, err)
		assert.Equal(t, UnknownEvent{Type: "leaderboard"}, event)
	})

	t.Run("malformed json", func(t *testing.T) {
		event, err := DecodeEvent([]byte(`{"type":`))

		require.Error(t, err)
		assert.Nil(t, event)
	})
}
