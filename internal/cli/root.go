package cli

import (
	"subgrep/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subgrep",
	Short: "Search for terms across subtitle files",
	Long: `Subgrep searches for a term across SRT and WebVTT subtitle files
and reports matching entries with their time ranges.

Near-duplicate matches from auto-generated captions (rolling or
overlapping cues) are suppressed by default.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		String("config", "", "Path to a TOML config file")
}
