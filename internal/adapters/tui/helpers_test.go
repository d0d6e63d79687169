package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/valentine-cli/internal/config"
	"github.com/xvierd/valentine-cli/internal/ports"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 2, 14, 23, 59, 0, 0, time.Local)}
}

func keyPress(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func motion(x, y int) tea.Msg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func click(x, y int) tea.Msg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// commandTracker records every event sent via the command callback.
func commandTracker() (func(ports.CommandEvent) error, *[]ports.CommandEvent) {
	var events []ports.CommandEvent
	return func(ev ports.CommandEvent) error {
		events = append(events, ev)
		return nil
	}, &events
}

// testModel returns a model on a 100x40 terminal with a fixed clock and seed.
func testModel(clock *fakeClock) Model {
	return NewModel(config.DefaultConfig().Card, nil,
		WithClock(clock),
		WithRandom(NewRandom(7)),
		WithSize(100, 40),
	)
}

// send runs msg through Update and returns the concrete model.
func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// escalate presses maybe and delivers the delayed escalation.
func escalate(m Model) Model {
	m, _ = send(m, keyPress("m"))
	m, _ = send(m, escalateMsg{})
	return m
}

// settle lets typewriters finish and springs come to rest.
func settle(m Model, clock *fakeClock) Model {
	clock.advance(30 * time.Second)
	for i := 0; i < 200; i++ {
		m, _ = send(m, frameMsg(clock.Now()))
	}
	return m
}
