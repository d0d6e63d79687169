// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/valentine-cli/internal/config"
	"github.com/xvierd/valentine-cli/internal/domain"
	"github.com/xvierd/valentine-cli/internal/ports"
)

// defaultFrameInterval is roughly 15 frames per second.
const defaultFrameInterval = 66 * time.Millisecond

// Model represents the TUI state.
type Model struct {
	session domain.Session
	control domain.ControlPosition
	spring  controlSpring

	card   config.CardConfig
	theme  config.ThemeConfig
	styles styles
	keys   keyMap
	meter  progress.Model

	clock         ports.Clock
	rng           domain.Random
	frameInterval time.Duration
	field         []domain.Ornament
	confetti      []domain.Confetti

	width  int
	height int

	startedAt time.Time
	screenAt  time.Time // reset whenever the screen or level changes
	now       time.Time
	countdown string

	escalating bool

	commandCallback func(ports.CommandEvent) error
	lastErr         error
}

// Option configures a Model.
type Option func(*Model)

// WithClock sets the time source for the countdown and animations.
func WithClock(c ports.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithRandom sets the randomness used for ornaments, confetti and dodges.
func WithRandom(r domain.Random) Option {
	return func(m *Model) { m.rng = r }
}

// WithFrameInterval sets the animation frame interval.
func WithFrameInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.frameInterval = d
		}
	}
}

// WithSize sets the viewport size used until the first resize event.
func WithSize(width, height int) Option {
	return func(m *Model) { m.width, m.height = width, height }
}

// NewRandom returns a PCG generator. A zero seed picks one from the clock.
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewModel creates a new TUI model showing the invitation.
func NewModel(card config.CardConfig, theme *config.ThemeConfig, opts ...Option) Model {
	resolved := resolveTheme(theme)
	m := Model{
		session:       domain.NewSession(),
		control:       domain.DefaultControlPosition(),
		card:          card,
		theme:         resolved,
		styles:        newStyles(resolved),
		keys:          newKeyMap(),
		meter:         progress.New(progress.WithGradient(resolved.GradientStart, resolved.GradientEnd), progress.WithoutPercentage()),
		clock:         ports.SystemClock,
		frameInterval: defaultFrameInterval,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.rng == nil {
		m.rng = NewRandom(0)
	}
	m.spring = newControlSpring(m.frameInterval)
	m.field = domain.GenerateField(m.rng, domain.FieldSize)
	m.now = m.clock.Now()
	m.startedAt = m.now
	m.screenAt = m.now
	m.countdown = domain.Countdown(m.now)
	return m
}

// SetCommandCallback sets a function to call after each user command.
func (m *Model) SetCommandCallback(callback func(ports.CommandEvent) error) {
	m.commandCallback = callback
}

// Session returns the card state.
func (m Model) Session() domain.Session {
	return m.session
}

// Control returns the evasive control's placement.
func (m Model) Control() domain.ControlPosition {
	return m.control
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), frameCmd(m.frameInterval))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.countdown = domain.Countdown(m.clock.Now())
		return m, tickCmd()

	case frameMsg:
		m.now = m.clock.Now()
		if m.control.IsOverride() {
			m.spring.step(m.control.X, m.control.Y)
		}
		return m, frameCmd(m.frameInterval)

	case escalateMsg:
		return m.finishEscalate(), nil

	case commandErrMsg:
		m.lastErr = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.report(ports.CmdQuit, false)
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			return m.apply(ports.CmdAccept), nil
		case key.Matches(msg, m.keys.Decline):
			return m.apply(ports.CmdDecline), nil
		case key.Matches(msg, m.keys.Escalate):
			return m.startEscalate()
		case key.Matches(msg, m.keys.Restart):
			return m.apply(ports.CmdRestart), nil
		}

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := domain.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for _, box := range m.hitBoxes() {
			if box.rect.Contains(p) {
				if box.cmd == ports.CmdEscalate {
					return m.startEscalate()
				}
				return m.apply(box.cmd), nil
			}
		}

	case tea.MouseActionMotion:
		if m.session.IsUndecided() && domain.WithinProximity(p, m.controlRect()) {
			m = m.dodge()
			m.report(ports.CmdDodge, true)
		}
	}
	return m, nil
}

// hitBoxes returns every clickable region, topmost first. The evasive
// control is drawn over the card once it has left the layout.
func (m Model) hitBoxes() []hitBox {
	var boxes []hitBox
	if m.session.IsUndecided() && m.control.IsOverride() {
		boxes = append(boxes, hitBox{cmd: ports.CmdDecline, rect: m.controlRect()})
	}
	return append(boxes, m.layout().boxes...)
}

// apply runs a state machine command and updates everything that depends on
// the screen shown.
func (m Model) apply(cmd ports.CardCommand) Model {
	action, ok := cmd.Action()
	if !ok {
		return m
	}
	next, changed := domain.Apply(m.session, action)
	if changed {
		m.session = next
		m.escalating = false
		m.enterScreen()
		switch {
		case next.Accepted:
			m.confetti = domain.GenerateConfetti(m.rng, domain.ConfettiCount)
		case cmd == ports.CmdRestart:
			m.control = domain.DefaultControlPosition()
			m.spring.reset()
			m.confetti = nil
		}
	}
	m.report(cmd, changed)
	return m
}

// startEscalate wiggles the escalate control; the level changes when the
// delayed escalateMsg arrives.
func (m Model) startEscalate() (tea.Model, tea.Cmd) {
	if !m.session.CanEscalate() || m.escalating {
		return m, nil
	}
	m.escalating = true
	return m, escalateCmd()
}

func (m Model) finishEscalate() Model {
	if !m.escalating {
		return m
	}
	m.escalating = false
	next, changed := domain.Apply(m.session, domain.ActionEscalate)
	if changed {
		m.session = next
		m.enterScreen()
		m = m.dodge()
	}
	m.report(ports.CmdEscalate, changed)
	return m
}

// dodge moves the evasive control to a fresh random spot. The spring starts
// from wherever the control is drawn now.
func (m Model) dodge() Model {
	from := m.controlRect()
	m.spring.launch(from.X, from.Y)
	m.control = domain.Reposition(m.rng, domain.Size{Width: m.width, Height: m.height}, m.controlSize())
	return m
}

func (m *Model) enterScreen() {
	m.now = m.clock.Now()
	m.screenAt = m.now
}

// controlSize is the evasive control's size at rest.
func (m Model) controlSize() domain.Size {
	rendered := m.noButton(domain.DefaultControlPosition())
	return domain.Size{Width: lipgloss.Width(rendered), Height: lipgloss.Height(rendered)}
}

// controlRect is where the evasive control is drawn: its layout slot, or
// the spring position once it has been moved.
func (m Model) controlRect() domain.Rect {
	if !m.control.IsOverride() {
		return m.layout().noSlot
	}
	x, y := m.control.X, m.control.Y
	if m.spring.active {
		x, y = m.spring.position()
	}
	rendered := m.noButton(m.control)
	return domain.Rect{X: x, Y: y, Width: lipgloss.Width(rendered), Height: lipgloss.Height(rendered)}
}

// report hands a command and its outcome to the command callback.
func (m *Model) report(cmd ports.CardCommand, changed bool) {
	if m.commandCallback == nil {
		return
	}
	m.lastErr = m.commandCallback(ports.CommandEvent{
		Command: cmd,
		Session: m.session,
		Changed: changed,
	})
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	c := newCanvas(m.width, m.height)
	paintField(c, m.field, m.now.Sub(m.startedAt))

	s := m.layout()
	c.put(s.x, s.y, s.card)

	if m.session.IsUndecided() && m.control.IsOverride() {
		r := m.controlRect()
		c.put(r.X, r.Y, m.noButton(m.control))
	}
	if m.session.Accepted {
		paintConfetti(c, m.confetti, m.sinceScreen())
	}

	love, help := m.footer()
	if m.height > 2 {
		c.put((m.width-lipgloss.Width(love))/2, m.height-2, love)
	}
	c.put((m.width-lipgloss.Width(help))/2, m.height-1, help)

	return c.String()
}
