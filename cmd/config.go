package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xvierd/valentine-cli/internal/config"
)

// configCmd prints where the configuration lives and what is in effect.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the configuration file and effective settings",
	Long:  `Print the path of the configuration file and the settings in effect after flags are applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		printConfig(cmd.OutOrStdout(), path, app.config)
		return nil
	},
}

func printConfig(w io.Writer, path string, cfg *config.Config) {
	notifStatus := "off"
	if cfg.Notifications.Enabled {
		notifStatus = "on"
	}
	seed := "random"
	if cfg.Animation.Seed != 0 {
		seed = fmt.Sprintf("%d", cfg.Animation.Seed)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Config file:     %s\n", path)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Nickname:        %s\n", cfg.Card.Nickname)
	fmt.Fprintf(w, "  To:              %s\n", cfg.Card.To)
	fmt.Fprintf(w, "  From:            %s\n", cfg.Card.From)
	fmt.Fprintf(w, "  Screenshot to:   %s\n", cfg.Card.ScreenshotTo)
	fmt.Fprintf(w, "  Notifications:   %s\n", notifStatus)
	fmt.Fprintf(w, "  Frame interval:  %s\n", cfg.FrameInterval())
	fmt.Fprintf(w, "  Seed:            %s\n", seed)
	fmt.Fprintf(w, "  Log:             %s (%s)\n", cfg.Log.File, cfg.Log.Level)
	fmt.Fprintln(w)
}
