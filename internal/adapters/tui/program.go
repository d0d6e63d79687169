package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/sirupsen/logrus"
	"github.com/xvierd/valentine-cli/internal/config"
	"github.com/xvierd/valentine-cli/internal/domain"
	"github.com/xvierd/valentine-cli/internal/ports"
)

// commandBuffer is how many commands may queue while the callback is busy.
const commandBuffer = 16

// Card implements the ports.Card interface using Bubbletea.
type Card struct {
	cfg    *config.Config
	log    *logrus.Logger
	logOut io.Writer
	opts   []Option

	cmdChan     chan ports.CommandEvent
	mu          sync.RWMutex
	wg          sync.WaitGroup
	cmdCallback func(ports.CommandEvent) error
}

// NewCard creates a new TUI card adapter. While the card runs, log output
// goes to logOut instead of the terminal; a nil logOut discards it.
func NewCard(cfg *config.Config, log *logrus.Logger, logOut io.Writer, opts ...Option) *Card {
	if logOut == nil {
		logOut = io.Discard
	}
	return &Card{
		cfg:     cfg,
		log:     log,
		logOut:  logOut,
		opts:    opts,
		cmdChan: make(chan ports.CommandEvent, commandBuffer),
	}
}

// Run shows the card and blocks until the user quits or ctx is done. It
// returns the card state at exit.
func (c *Card) Run(ctx context.Context) (domain.Session, error) {
	opts := []Option{
		WithRandom(NewRandom(c.cfg.Animation.Seed)),
		WithFrameInterval(c.cfg.FrameInterval()),
	}
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil {
		opts = append(opts, WithSize(w, h))
	}
	opts = append(opts, c.opts...)

	model := NewModel(c.cfg.Card, &c.cfg.Theme, opts...)

	c.mu.RLock()
	callback := c.cmdCallback
	c.mu.RUnlock()
	if callback != nil {
		model.SetCommandCallback(c.enqueue)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if callback != nil {
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case ev := <-c.cmdChan:
					if err := callback(ev); err != nil {
						program.Send(commandErrMsg{err: err})
					}
				}
			}
		}()
	}

	// Handle context cancellation
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		<-ctx.Done()
		program.Quit()
	}()

	// Keep log lines from corrupting the alternate screen.
	if c.log != nil {
		prevOut := c.log.Out
		c.log.SetOutput(c.logOut)
		defer c.log.SetOutput(prevOut)
	}

	final, err := program.Run()

	cancel()
	c.wg.Wait()
	c.drain(callback)

	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to run TUI: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Session(), nil
	}
	return model.Session(), nil
}

// enqueue hands an event to the callback goroutine without blocking the
// update loop.
func (c *Card) enqueue(ev ports.CommandEvent) error {
	select {
	case c.cmdChan <- ev:
		return nil
	default:
		return fmt.Errorf("command %s dropped: queue full", ev.Command)
	}
}

// drain delivers events queued after the callback goroutine stopped.
func (c *Card) drain(callback func(ports.CommandEvent) error) {
	if callback == nil {
		return
	}
	for {
		select {
		case ev := <-c.cmdChan:
			if err := callback(ev); err != nil && c.log != nil {
				c.log.WithError(err).WithField("command", ev.Command).Warn("command callback failed")
			}
		default:
			return
		}
	}
}

// SetCommandCallback sets a function to call after each user command.
// Callbacks run on their own goroutine, in order.
func (c *Card) SetCommandCallback(callback func(ports.CommandEvent) error) {
	c.mu.Lock()
	c.cmdCallback = callback
	c.mu.Unlock()
}

// Ensure Card implements ports.Card.
var _ ports.Card = (*Card)(nil)
