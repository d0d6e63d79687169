package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/valentine-cli/internal/domain"
	"github.com/xvierd/valentine-cli/internal/ports"
)

var countdownJSON bool

// clock is the time source for non-interactive commands; replaced in tests.
var clock ports.Clock = ports.SystemClock

// countdownCmd prints the time left until the card's target date.
var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Print the time left until Valentine's Day ends",
	Long:  `Print the countdown shown on the card once and exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := clock.Now()
		if countdownJSON {
			return outputCountdownJSON(cmd, now)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Valentine's Day ends in: %s ⏰\n", domain.Countdown(now))
		return nil
	},
}

func init() {
	countdownCmd.Flags().BoolVar(&countdownJSON, "json", false, "Output the countdown in JSON format")
}

// outputCountdownJSON outputs the countdown in JSON format
func outputCountdownJSON(cmd *cobra.Command, now time.Time) error {
	left := domain.TimeLeft(now)
	result := map[string]interface{}{
		"target":    domain.TargetDate(now).Format(time.RFC3339),
		"remaining": domain.FormatCountdown(left),
		"seconds":   int64(left / time.Second),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal countdown: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
