// Package cmd provides the CLI commands for the valentine card.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/valentine-cli/internal/adapters/tui"
	"github.com/xvierd/valentine-cli/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	nicknameFlag string
	toFlag       string
	fromFlag     string
	seedFlag     uint64
	noNotify     bool
	logLevelFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "valentine",
	Short: "Valentine - an interactive greeting card for your terminal",
	Long: `Valentine shows a full-screen "Will you be my Valentine?" card with a
countdown, floating hearts and a No button that runs away from the mouse.

Answer with the mouse or the keyboard: y yes, m maybe, n no, r start over, q quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runCard,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&nicknameFlag, "nickname", "", "Name used in the invitation heading (default from config)")
	rootCmd.PersistentFlags().StringVar(&toFlag, "to", "", "Recipient shown in the card footer")
	rootCmd.PersistentFlags().StringVar(&fromFlag, "from", "", "Sender shown in the card footer")
	rootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "Seed for ornaments and dodges (0 picks one at random)")
	rootCmd.PersistentFlags().BoolVar(&noNotify, "no-notify", false, "Disable the desktop notification on acceptance")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Valentine CLI\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(countdownCmd)
	rootCmd.AddCommand(configCmd)
}

// runCard shows the card until the user quits, then prints how it went.
func runCard(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()

	svc := services.NewCardService(app.notifier, app.config.Card.Nickname, app.log)
	card := tui.NewCard(app.config, app.log, app.logOut)
	card.SetCommandCallback(svc.HandleCommand)

	app.log.WithField("session", svc.SessionID()).Debug("card opened")

	final, err := card.Run(ctx)
	if err != nil {
		return err
	}

	summary := svc.Summary()
	summary.Final = final
	fmt.Fprintln(cmd.OutOrStdout(), summary.Outcome())
	return nil
}
