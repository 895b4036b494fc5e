package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eventlint/eventlint/internal/adapters/outbound/config"
)

func newRulesCmd() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the effective rule configuration",
		Long:  "Resolve and print the rule configuration a scan would use, as YAML. Useful for checking which rules apply before wiring eventlint into a pipeline.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(rulesPath)
			if err != nil {
				return fmt.Errorf("loading rules: %w", err)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding rules: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "Path to a rule file (default: .eventlint.yaml, falling back to built-in rules)")

	return cmd
}
