// Package domain contains the card's view-state model: the session state
// machine, the countdown, the evasive control placement and the decorative
// field. Everything here is a pure function of its inputs and independent of
// the terminal framework that renders it.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors.
var (
	ErrUnknownAction = errors.New("unknown action")
)

// MaxLevel is the highest escalation level; escalating beyond it is a no-op.
const MaxLevel = 2

// Phase identifies which screen the card shows.
type Phase string

const (
	PhaseUndecided Phase = "undecided"
	PhaseAccepted  Phase = "accepted"
	PhaseDeclined  Phase = "declined"
)

// Action is a user intent that drives the session state machine.
type Action string

const (
	ActionAccept   Action = "accept"
	ActionDecline  Action = "decline"
	ActionEscalate Action = "escalate"
	ActionRestart  Action = "restart"
)

// ValidActions lists all supported actions.
var ValidActions = []Action{
	ActionAccept,
	ActionDecline,
	ActionEscalate,
	ActionRestart,
}

// ParseAction checks if a string names a valid action.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	for _, valid := range ValidActions {
		if a == valid {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownAction, s)
}

// Session is the card's state for one run. Accepted and Declined are never
// both true, and Level stays within [0, MaxLevel].
type Session struct {
	Accepted bool
	Declined bool
	Level    int
}

// NewSession returns the initial Undecided(0) state.
func NewSession() Session {
	return Session{}
}

// Phase returns the screen the session currently maps to.
func (s Session) Phase() Phase {
	switch {
	case s.Accepted:
		return PhaseAccepted
	case s.Declined:
		return PhaseDeclined
	default:
		return PhaseUndecided
	}
}

// IsUndecided returns true while no answer has been given.
func (s Session) IsUndecided() bool {
	return s.Phase() == PhaseUndecided
}

// IsTerminal returns true once the session was accepted or declined.
func (s Session) IsTerminal() bool {
	return !s.IsUndecided()
}

// CanEscalate returns true if an escalate action would change the state.
func (s Session) CanEscalate() bool {
	return s.IsUndecided() && s.Level < MaxLevel
}

// Apply returns the state that follows s after action a, and whether the
// state changed. Actions whose precondition does not hold are no-ops.
func Apply(s Session, a Action) (Session, bool) {
	switch a {
	case ActionAccept:
		if !s.IsUndecided() {
			return s, false
		}
		return Session{Accepted: true, Level: s.Level}, true
	case ActionDecline:
		if !s.IsUndecided() {
			return s, false
		}
		return Session{Declined: true, Level: s.Level}, true
	case ActionEscalate:
		if !s.CanEscalate() {
			return s, false
		}
		s.Level++
		return s, true
	case ActionRestart:
		if !s.IsTerminal() {
			return s, false
		}
		return NewSession(), true
	default:
		return s, false
	}
}

// GetPhaseLabel returns a human-readable label for the phase.
func GetPhaseLabel(p Phase) string {
	switch p {
	case PhaseUndecided:
		return "Waiting for an answer"
	case PhaseAccepted:
		return "Accepted"
	case PhaseDeclined:
		return "Declined"
	default:
		return "Unknown"
	}
}
