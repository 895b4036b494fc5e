package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/eventlint/eventlint/internal/adapters/outbound/config"
	"github.com/eventlint/eventlint/internal/adapters/outbound/gitinfo"
	"github.com/eventlint/eventlint/internal/adapters/outbound/history"
	"github.com/eventlint/eventlint/internal/adapters/outbound/parser"
	"github.com/eventlint/eventlint/internal/adapters/outbound/tui"
	"github.com/eventlint/eventlint/internal/application"
	"github.com/eventlint/eventlint/internal/domain"
)

func newScanCmd() *cobra.Command {
	var (
		jsonOutput bool
		strict     bool
		rulesPath  string
	)

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Validate a single event against the configured rules",
		Long:  "Parse one JSON event from a file (or stdin with no argument or \"-\") and run it through the rule engine. Exits nonzero when the event has error-severity issues.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readEvent(cmd, args)
			if err != nil {
				return fmt.Errorf("reading event: %w", err)
			}

			workdir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolving working directory: %w", err)
			}

			svc := application.NewScanService(
				parser.New(),
				config.New(),
				gitinfo.New(),
				newLogger(cmd),
			)

			report, err := svc.Scan(raw, rulesPath, workdir)
			if err != nil {
				var perr *domain.ParseError
				if errors.As(err, &perr) {
					return fmt.Errorf("event rejected (%s): %s", perr.Kind, perr.Message)
				}
				return fmt.Errorf("scan failed: %w", err)
			}

			// Best-effort history entry; a scan never fails on bookkeeping.
			_ = history.New().Save(workdir, domain.ScanEntry{
				Timestamp:  report.Timestamp,
				CommitHash: report.CommitHash,
				Event:      report.Event,
				Passed:     report.Result.Passed,
				Errors:     report.Errors,
				Warnings:   report.Warnings,
			})

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if !report.Result.Passed {
				return fmt.Errorf("event failed validation: %d error(s)", report.Errors)
			}
			if strict && report.Warnings > 0 {
				return fmt.Errorf("event failed validation (strict): %d warning(s)", report.Warnings)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the scan report as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on warnings as well as errors")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "Path to a rule file (default: .eventlint.yaml, falling back to built-in rules)")

	return cmd
}

func readEvent(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
