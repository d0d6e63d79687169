package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is sent every second to recompute the countdown.
type tickMsg time.Time

// frameMsg advances the animations.
type frameMsg time.Time

// escalateMsg applies a pending escalation once the button wiggle is over.
type escalateMsg struct{}

// escalateDelay is how long the maybe button wiggles before the card changes.
const escalateDelay = 150 * time.Millisecond

// tickCmd creates a command that sends a tick message.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// frameCmd creates a command that sends the next animation frame.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func escalateCmd() tea.Cmd {
	return tea.Tick(escalateDelay, func(time.Time) tea.Msg {
		return escalateMsg{}
	})
}

// commandErrMsg carries an error returned by the command callback after it
// ran outside the update loop.
type commandErrMsg struct {
	err error
}
