package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/xvierd/valentine-cli/internal/domain"
)

// keyMap defines the card's key bindings. Each answer button has a key so
// the card works without a mouse.
type keyMap struct {
	Accept   key.Binding
	Escalate key.Binding
	Decline  key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Accept: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		Escalate: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "maybe"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "start over"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// shortHelp returns the bindings that apply to the session's current screen.
func (k keyMap) shortHelp(s domain.Session) []key.Binding {
	if s.IsTerminal() {
		return []key.Binding{k.Restart, k.Quit}
	}
	if s.CanEscalate() {
		return []key.Binding{k.Accept, k.Escalate, k.Decline, k.Quit}
	}
	return []key.Binding{k.Accept, k.Decline, k.Quit}
}

// helpLine renders bindings as "y yes · m maybe · q quit".
func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
