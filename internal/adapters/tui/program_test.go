package tui

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/valentine-cli/internal/config"
	"github.com/xvierd/valentine-cli/internal/ports"
)

func TestNewCard(t *testing.T) {
	card := NewCard(config.DefaultConfig(), logrus.New(), nil)
	require.NotNil(t, card)
	assert.NotNil(t, card.logOut, "nil log output should be replaced with a discard writer")
}

func TestCard_EnqueueDropsWhenFull(t *testing.T) {
	card := NewCard(config.DefaultConfig(), logrus.New(), nil)
	for i := 0; i < commandBuffer; i++ {
		require.NoError(t, card.enqueue(ports.CommandEvent{Command: ports.CmdDodge}))
	}
	assert.Error(t, card.enqueue(ports.CommandEvent{Command: ports.CmdDodge}))
}

func TestCard_DrainDeliversQueuedEvents(t *testing.T) {
	log, hook := test.NewNullLogger()
	card := NewCard(config.DefaultConfig(), log, nil)

	require.NoError(t, card.enqueue(ports.CommandEvent{Command: ports.CmdAccept}))
	require.NoError(t, card.enqueue(ports.CommandEvent{Command: ports.CmdQuit}))

	var got []ports.CardCommand
	card.drain(func(ev ports.CommandEvent) error {
		got = append(got, ev.Command)
		if ev.Command == ports.CmdQuit {
			return errors.New("late")
		}
		return nil
	})

	assert.Equal(t, []ports.CardCommand{ports.CmdAccept, ports.CmdQuit}, got)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
