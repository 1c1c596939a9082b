package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tailwater/sawmill/internal/analyzer"
	"github.com/tailwater/sawmill/internal/sink/postgres"
)

var ingestDSN string

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>...",
	Short: "Parse access logs and store entries plus a summary in PostgreSQL",
	Args:  cobra.MinimumNArgs(1),
	Run:   runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestDSN, "dsn", "",
		"PostgreSQL DSN (falls back to SAWMILL_POSTGRES_DSN)")
}

func runIngest(cmd *cobra.Command, args []string) {
	dsn := ingestDSN
	if dsn == "" {
		dsn = cfg.Sink.PostgresDSN
	}
	if dsn == "" {
		slog.Error("no PostgreSQL DSN configured")
		os.Exit(1)
	}

	ctx := cmd.Context()

	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		slog.Error("ingest failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	for _, path := range args {
		start := time.Now()
		entries, err := parseInputs(ctx, []string{path})
		if err != nil {
			slog.Error("parse failed", "file", path, "error", err)
			os.Exit(1)
		}

		if err := store.InsertEntries(ctx, entries); err != nil {
			slog.Error("insert failed", "file", path, "error", err)
			os.Exit(1)
		}
		if err := store.SaveSummary(ctx, path, analyzer.New(entries).Summary()); err != nil {
			slog.Error("summary save failed", "file", path, "error", err)
			os.Exit(1)
		}

		slog.Info("ingested file", "file", path,
			"entries", len(entries), "took", time.Since(start))
	}
}
