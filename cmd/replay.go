package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/valentine-cli/internal/domain"
)

// replayCmd runs a sequence of answers through the card's state machine
// without opening the card.
var replayCmd = &cobra.Command{
	Use:   "replay <action>...",
	Short: "Replay answers through the card without the UI",
	Long: `Apply each action (accept, decline, escalate, restart) in order starting
from a fresh card and print the state after every step.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := domain.NewSession()
		out := cmd.OutOrStdout()
		for _, arg := range args {
			action, err := domain.ParseAction(arg)
			if err != nil {
				return err
			}
			next, changed := domain.Apply(session, action)
			note := ""
			if !changed {
				note = " (ignored)"
			}
			session = next
			fmt.Fprintf(out, "%-9s → %s, level %d%s\n",
				action, domain.GetPhaseLabel(session.Phase()), session.Level, note)
		}
		if session.IsUndecided() {
			p := domain.Present(session.Level, app.config.Card.Nickname)
			fmt.Fprintf(out, "\n%s\n", p.Heading)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
