package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eventlint/eventlint/internal/fixtures"
)

func newExampleCmd() *cobra.Command {
	var bad bool

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print a canned example event",
		Long:  "Print the compliant demo event, or with --bad the event that violates every rule family. Pipe it back into scan to see the engine in action.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			event := fixtures.CompliantEvent
			if bad {
				event = fixtures.ViolatingEvent
			}
			fmt.Fprintln(cmd.OutOrStdout(), event)
			return nil
		},
	}

	cmd.Flags().BoolVar(&bad, "bad", false, "Print the rule-violating example instead")

	return cmd
}
