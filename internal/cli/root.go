package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tailwater/sawmill/internal/config"
	"github.com/tailwater/sawmill/internal/logging"
)

var cfg config.Config

var root = &cobra.Command{
	Use:   "sawmill",
	Short: "Sawmill - web server access log analysis",
	Long: `Sawmill parses web server access logs and computes traffic summaries:
status and method distributions, top paths and client addresses, byte
totals, error rates, and per-hour request counts. It can follow a live
log file, fire alert rules, and export reports in several formats.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			slog.Debug("no .env file loaded", "error", err)
		}
		cfg = config.Load()

		// Report output goes to stdout for analyze/export, so app logs
		// switch to JSON on stderr there.
		outputIsStdout := cmd.Name() == "analyze" || cmd.Name() == "export"
		logging.Init(cfg.Log, outputIsStdout)
	},
}

// Execute runs the root command.
func Execute() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	root.AddCommand(analyzeCmd)
	root.AddCommand(tailCmd)
	root.AddCommand(exportCmd)
	root.AddCommand(ingestCmd)
}
