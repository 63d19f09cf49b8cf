// internal/commands/show_config.go
package perfgate

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showCmd groups the informational subcommands.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
}

// showConfigCmd displays the effective comparison configuration after the
// config file and flags have been applied.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective comparison configuration",
	Run: func(cmd *cobra.Command, args []string) {
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "config file: %s\n", used)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "config file: (defaults)")
		}
		pp.Println(GetConfig())
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
	rootCmd.AddCommand(showCmd)
}
