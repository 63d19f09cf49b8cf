// internal/commands/compare.go
package perfgate

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/perfgate/perfgate/internal/compare"
	"github.com/perfgate/perfgate/internal/logging"
	"github.com/perfgate/perfgate/internal/report"
	"github.com/perfgate/perfgate/internal/snapshot"
	"github.com/perfgate/perfgate/internal/util"
)

var compareOpts struct {
	Format           string
	OutputPath       string
	FailOnRegression bool
}

// compareCmd loads two snapshot documents, runs the comparator, and renders
// the result in the selected format.
var compareCmd = &cobra.Command{
	Use:   "compare <baseline.json> <current.json>",
	Short: "Compare a baseline snapshot against a current one",
	Long: `Load two performance snapshot documents, compute per-metric changes with
significance, aggregate the weighted improvement score, assess the configured
targets, and render the comparison as JSON, CSV, a text table, or Markdown.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		baseline, err := snapshot.Load(args[0])
		if err != nil {
			return err
		}
		current, err := snapshot.Load(args[1])
		if err != nil {
			return err
		}

		comparator, err := compare.New(cfg.Compare)
		if err != nil {
			return err
		}
		result, err := comparator.Compare(baseline, current)
		if err != nil {
			return err
		}
		logging.LogEvent("[COMPARE] %s: %s vs %s score=%.2f success=%t",
			result.Metadata.EndpointID, args[0], args[1],
			result.Summary.OverallImprovementScore, result.Summary.Achievements.OverallSuccess)

		if cfg.Debug {
			pp.Println(result.Summary)
		}

		format, err := report.ParseFormat(compareOpts.Format)
		if err != nil {
			return err
		}
		colorize := compareOpts.OutputPath == "" && format == report.FormatTable
		rendered, err := report.Render(result, format, colorize)
		if err != nil {
			return err
		}

		if compareOpts.OutputPath != "" {
			if err := util.WriteFile(compareOpts.OutputPath, rendered); err != nil {
				return fmt.Errorf("write report %s: %w", compareOpts.OutputPath, err)
			}
		} else if _, err := cmd.OutOrStdout().Write(rendered); err != nil {
			return err
		}

		if compareOpts.FailOnRegression &&
			(!result.Summary.Achievements.OverallSuccess || len(result.Summary.Regressions) > 0) {
			return ErrTargetsNotMet
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareOpts.Format, "format", "table", "output format: json, csv, table, or markdown")
	compareCmd.Flags().StringVar(&compareOpts.OutputPath, "output", "", "write the report to this file instead of stdout")
	compareCmd.Flags().BoolVar(&compareOpts.FailOnRegression, "fail-on-regression", false, "exit with code 2 when targets are unmet or regressions are detected")

	rootCmd.AddCommand(compareCmd)
}
