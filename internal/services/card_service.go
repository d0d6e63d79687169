// Package services holds the card's application use cases.
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xvierd/valentine-cli/internal/domain"
	"github.com/xvierd/valentine-cli/internal/ports"
)

// Summary aggregates what happened during one card run.
type Summary struct {
	SessionID   string
	Escalations int
	Dodges      int
	Accepted    int
	Declined    int
	Restarts    int
	Final       domain.Session
}

// Outcome returns a one-line description of the run for the terminal.
func (s Summary) Outcome() string {
	switch s.Final.Phase() {
	case domain.PhaseAccepted:
		return fmt.Sprintf("💖 Accepted at escalation level %d after %d dodges.", s.Final.Level, s.Dodges)
	case domain.PhaseDeclined:
		return fmt.Sprintf("💔 Declined at escalation level %d. The No button dodged %d times.", s.Final.Level, s.Dodges)
	default:
		return fmt.Sprintf("💭 No answer yet (escalation level %d, %d dodges).", s.Final.Level, s.Dodges)
	}
}

// CardService reacts to card commands: it logs them, fires the acceptance
// notification and keeps the run summary.
type CardService struct {
	notifier ports.Notifier
	nickname string
	log      logrus.FieldLogger
	summary  Summary
}

// NewCardService creates a new card service for one run.
func NewCardService(notifier ports.Notifier, nickname string, log logrus.FieldLogger) *CardService {
	sessionID := domain.NewSessionID()
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CardService{
		notifier: notifier,
		nickname: nickname,
		log:      log.WithField("session", sessionID),
		summary:  Summary{SessionID: sessionID},
	}
}

// HandleCommand records a command reported by the card UI.
func (s *CardService) HandleCommand(ev ports.CommandEvent) error {
	entry := s.log.WithFields(logrus.Fields{
		"action":  string(ev.Command),
		"level":   ev.Session.Level,
		"phase":   string(ev.Session.Phase()),
		"changed": ev.Changed,
	})
	s.summary.Final = ev.Session

	switch ev.Command {
	case ports.CmdDodge:
		s.summary.Dodges++
		entry.Debug("control dodged")
		return nil
	case ports.CmdQuit:
		entry.Info("card closed")
		return nil
	}

	if _, ok := ev.Command.Action(); !ok {
		return fmt.Errorf("%w %q", domain.ErrUnknownAction, ev.Command)
	}

	if !ev.Changed {
		entry.Debug("command ignored")
		return nil
	}

	switch ev.Command {
	case ports.CmdEscalate:
		s.summary.Escalations++
	case ports.CmdAccept:
		s.summary.Accepted++
		switch {
		case s.notifier == nil || !s.notifier.IsEnabled():
			entry.Debug("notifications disabled")
		default:
			if err := s.notifier.NotifyAccepted(s.nickname); err != nil {
				entry.WithError(err).Warn("failed to send notification")
			}
		}
	case ports.CmdDecline:
		s.summary.Declined++
	case ports.CmdRestart:
		s.summary.Restarts++
	}
	entry.Info("card transition")
	return nil
}

// SessionID returns the id used in this run's log fields.
func (s *CardService) SessionID() string {
	return s.summary.SessionID
}

// Summary returns the run summary so far.
func (s *CardService) Summary() Summary {
	return s.summary
}
