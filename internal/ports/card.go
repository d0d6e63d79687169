// Package ports defines the interfaces (driven and driving ports)
// for the card following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import (
	"context"

	"github.com/xvierd/valentine-cli/internal/domain"
)

// CardCommand represents a user action reported by the card UI.
type CardCommand string

const (
	// CmdAccept answers yes.
	CmdAccept CardCommand = "accept"

	// CmdDecline answers no.
	CmdDecline CardCommand = "decline"

	// CmdEscalate asks for more persuasion.
	CmdEscalate CardCommand = "escalate"

	// CmdRestart returns a terminal screen to the invitation.
	CmdRestart CardCommand = "restart"

	// CmdDodge reports that the evasive control moved.
	CmdDodge CardCommand = "dodge"

	// CmdQuit exits the application.
	CmdQuit CardCommand = "quit"
)

// Action maps a command to the state machine action it drives. Commands
// without a state transition return false.
func (c CardCommand) Action() (domain.Action, bool) {
	switch c {
	case CmdAccept:
		return domain.ActionAccept, true
	case CmdDecline:
		return domain.ActionDecline, true
	case CmdEscalate:
		return domain.ActionEscalate, true
	case CmdRestart:
		return domain.ActionRestart, true
	default:
		return "", false
	}
}

// CommandEvent is what the UI reports after handling a command.
type CommandEvent struct {
	Command CardCommand
	Session domain.Session
	Changed bool
}

// Card is the interactive card UI.
// This is a driving port (called by the application layer).
type Card interface {
	// Run shows the card and blocks until the user quits or ctx is done.
	Run(ctx context.Context) (domain.Session, error)

	// SetCommandCallback sets a function to call after each command.
	SetCommandCallback(callback func(CommandEvent) error)
}
