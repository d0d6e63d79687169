package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/valentine-cli/internal/config"
	"github.com/xvierd/valentine-cli/internal/domain"
	"github.com/xvierd/valentine-cli/internal/ports"
)

func TestNewModel(t *testing.T) {
	clock := newFakeClock()
	m := testModel(clock)

	if got := m.Session(); got != domain.NewSession() {
		t.Errorf("NewModel() session = %+v, want undecided level 0", got)
	}
	if m.Control() != domain.DefaultControlPosition() {
		t.Errorf("NewModel() control = %+v, want default", m.Control())
	}
	if len(m.field) != domain.FieldSize {
		t.Errorf("NewModel() field has %d ornaments, want %d", len(m.field), domain.FieldSize)
	}
	if m.countdown != "00:01:00" {
		t.Errorf("NewModel() countdown = %q, want 00:01:00", m.countdown)
	}
	if m.confetti != nil {
		t.Error("NewModel() should not have confetti before acceptance")
	}
}

func TestModel_Init(t *testing.T) {
	m := testModel(newFakeClock())
	if m.Init() == nil {
		t.Error("Init() should start the tick and frame loops")
	}
}

func TestModel_View_Loading(t *testing.T) {
	m := NewModel(config.DefaultConfig().Card, nil, WithClock(newFakeClock()), WithRandom(NewRandom(1)))
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() = %q, want Loading... before the first resize", got)
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := testModel(newFakeClock())
	m, _ = send(m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if m.width != 120 || m.height != 50 {
		t.Errorf("size = %dx%d, want 120x50", m.width, m.height)
	}
}

func TestModel_TickRecomputesCountdown(t *testing.T) {
	clock := newFakeClock()
	m := testModel(clock)

	clock.advance(59 * time.Second)
	m, cmd := send(m, tickMsg(clock.Now()))
	if m.countdown != "00:00:01" {
		t.Errorf("countdown = %q, want 00:00:01", m.countdown)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	clock.advance(2 * time.Second)
	m, _ = send(m, tickMsg(clock.Now()))
	if m.countdown == "00:00:00" {
		t.Error("countdown should roll over to the next year's target")
	}
}

func TestModel_FrameAdvancesClock(t *testing.T) {
	clock := newFakeClock()
	m := testModel(clock)
	clock.advance(time.Second)

	m, cmd := send(m, frameMsg(clock.Now()))
	if !m.now.Equal(clock.Now()) {
		t.Errorf("now = %v, want %v", m.now, clock.Now())
	}
	if cmd == nil {
		t.Error("frame should schedule the next frame")
	}
}

func TestModel_View_Invitation(t *testing.T) {
	clock := newFakeClock()
	m := settle(testModel(clock), clock)
	view := m.View()

	for _, want := range []string{
		"Special Invitation",
		"Feb 14",
		"Will you be my Valentine Anjuu?",
		"Valentine's Day ends in:",
		"Unlimited Chocolates",
		"Yes 💕",
		"Maybe? 🤔",
		"No 😜",
		"To: My Favorite Person",
		"From: Yours Truly",
		"BUILT WITH LOVE",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	lines := strings.Split(view, "\n")
	if len(lines) != 40 {
		t.Errorf("View() has %d rows, want 40", len(lines))
	}
}

func TestModel_View_Compact(t *testing.T) {
	clock := newFakeClock()
	m := testModel(clock)
	m, _ = send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = settle(m, clock)
	view := m.View()

	if strings.Contains(view, "Special Invitation") {
		t.Error("compact view should drop the card header")
	}
	for _, want := range []string{"Yes 💕", "No 😜"} {
		if !strings.Contains(view, want) {
			t.Errorf("compact View() missing %q", want)
		}
	}
}

func TestModel_View_EmergencyLevel(t *testing.T) {
	clock := newFakeClock()
	m := testModel(clock)
	m = escalate(m)
	m = escalate(m)
	m = settle(m, clock)

	if m.Session().Level != 2 {
		t.Fatalf("level = %d, want 2", m.Session().Level)
	}
	// The moved control may be drawn over the card, so check the card itself.
	card := m.layout().card
	for _, want := range []string{"EMERGENCY VALENTINE PROTOCOL ACTIVATED", "Fine, YES! ❤️", "Urgent Request"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q", want)
		}
	}
	if strings.Contains(card, "Maybe?") {
		t.Error("card should not offer maybe at the last level")
	}
	if strings.Contains(card, "No 😜") {
		t.Error("the moved control should leave the card layout")
	}
	if !strings.Contains(m.View(), "No 😜") {
		t.Error("View() should draw the moved control")
	}
}

func TestModel_View_Accepted(t *testing.T) {
	clock := newFakeClock()
	m := testModel(clock)
	m, _ = send(m, keyPress("y"))
	m = settle(m, clock)
	if len(m.confetti) != domain.ConfettiCount {
		t.Errorf("got %d confetti particles, want %d", len(m.confetti), domain.ConfettiCount)
	}
	// Confetti falls over the text; leave it out to read the card.
	m.confetti = nil
	view := m.View()

	for _, want := range []string{"Yayyy!", "Send the screenshot Abi", "Start Over", "start over"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if strings.Contains(view, "No 😜") {
		t.Error("accepted view should not show the evasive control")
	}
}

func TestModel_View_Declined(t *testing.T) {
	clock := newFakeClock()
	m := testModel(clock)
	m, _ = send(m, keyPress("n"))
	m = settle(m, clock)
	view := m.View()

	for _, want := range []string{"Wait... how?", "Let's restart!"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_View_TypewriterStartsHidden(t *testing.T) {
	clock := newFakeClock()
	m := testModel(clock)
	if strings.Contains(m.View(), "Will you be my Valentine") {
		t.Error("heading should still be typing at the first frame")
	}
}

func TestModel_View_CommandError(t *testing.T) {
	m := testModel(newFakeClock())
	m, _ = send(m, commandErrMsg{err: errors.New("boom")})
	if !strings.Contains(m.View(), "Error: boom") {
		t.Error("View() should show the last command error")
	}
}

func TestModel_SpringSettlesOnTarget(t *testing.T) {
	clock := newFakeClock()
	m := escalate(testModel(clock))
	if !m.control.IsOverride() {
		t.Fatal("escalation should move the control")
	}
	m = settle(m, clock)

	x, y := m.spring.position()
	if x != m.control.X || y != m.control.Y {
		t.Errorf("spring at (%d,%d), want (%d,%d)", x, y, m.control.X, m.control.Y)
	}
	r := m.controlRect()
	if r.X != m.control.X || r.Y != m.control.Y {
		t.Errorf("controlRect at (%d,%d), want the control target", r.X, r.Y)
	}
}

func TestModel_ReportsCommands(t *testing.T) {
	m := testModel(newFakeClock())
	cb, events := commandTracker()
	m.SetCommandCallback(cb)

	m, _ = send(m, keyPress("r"))
	m, _ = send(m, keyPress("y"))

	if len(*events) != 2 {
		t.Fatalf("got %d events, want 2", len(*events))
	}
	if ev := (*events)[0]; ev.Command != ports.CmdRestart || ev.Changed {
		t.Errorf("first event = %+v, want unchanged restart", ev)
	}
	if ev := (*events)[1]; ev.Command != ports.CmdAccept || !ev.Changed || !ev.Session.Accepted {
		t.Errorf("second event = %+v, want changed accept", ev)
	}
}

func TestModel_CallbackErrorIsShown(t *testing.T) {
	m := testModel(newFakeClock())
	m.SetCommandCallback(func(ports.CommandEvent) error { return errors.New("nope") })
	m, _ = send(m, keyPress("y"))
	if m.lastErr == nil {
		t.Error("callback error should be kept for display")
	}
}

func TestNewRandom_Deterministic(t *testing.T) {
	a, b := NewRandom(42), NewRandom(42)
	for i := 0; i < 5; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("NewRandom() with the same seed should repeat")
		}
	}
}
