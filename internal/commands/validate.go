// internal/commands/validate.go
package perfgate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perfgate/perfgate/internal/snapshot"
)

// validateCmd runs the snapshot loader against a document without comparing
// anything, so producers can check their output shape.
var validateCmd = &cobra.Command{
	Use:          "validate <snapshot.json>",
	Short:        "Validate a snapshot document against the expected shape",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := snapshot.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "snapshot OK: endpoint=%s samples=%d raw_samples=%d quality=%t\n",
			snap.Metadata.EndpointID, snap.Metadata.SampleCount, len(snap.RawSamples),
			snap.Metrics.Quality != nil)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
