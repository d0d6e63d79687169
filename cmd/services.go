package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xvierd/valentine-cli/internal/adapters/notification"
	"github.com/xvierd/valentine-cli/internal/config"
)

// appDeps groups all dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	log      *logrus.Logger
	logFile  *os.File
	logOut   io.Writer // where logs go while the card owns the terminal
	notifier *notification.Notifier
}

// app holds all initialized dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads configuration, applies flag overrides and sets
// up logging and notifications.
func initializeServices(cmd *cobra.Command) error {
	// Load configuration
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		if app.config, err = config.Defaults(); err != nil {
			return err
		}
	}
	applyFlags(cmd, app.config)

	app.log = logrus.New()
	app.log.SetOutput(cmd.ErrOrStderr())
	app.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(app.config.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", app.config.Log.Level, err)
	}
	app.log.SetLevel(level)

	app.logOut = io.Discard
	if f, err := openLogFile(app.config); err != nil {
		app.log.WithError(err).Debug("log file unavailable, card logs are discarded")
	} else {
		app.logFile = f
		app.logOut = f
	}

	// Initialize notifier
	app.notifier = notification.New(&app.config.Notifications)
	if noNotify {
		app.notifier.SetEnabled(false)
	}
	return nil
}

// applyFlags overrides configuration with flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("nickname") {
		cfg.Card.Nickname = nicknameFlag
	}
	if flags.Changed("to") {
		cfg.Card.To = toFlag
	}
	if flags.Changed("from") {
		cfg.Card.From = fromFlag
	}
	if flags.Changed("seed") {
		cfg.Animation.Seed = seedFlag
	}
	if logLevelFlag != "" {
		cfg.Log.Level = logLevelFlag
	}
}

// openLogFile opens the configured log file for appending. A leading ~ is
// expanded and relative paths are resolved against the data directory.
func openLogFile(cfg *config.Config) (*os.File, error) {
	if cfg.Log.File == "" {
		return nil, fmt.Errorf("no log file configured")
	}
	path, err := config.ExpandHome(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(path) {
		dataDir, err := config.ExpandHome(cfg.Storage.DataDir)
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dataDir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.logFile != nil {
		err := app.logFile.Close()
		app.logFile = nil
		return err
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
