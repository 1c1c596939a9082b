package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tailwater/sawmill/internal/analyzer"
	"github.com/tailwater/sawmill/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <file>...",
	Short: "Parse access logs and write a report in the chosen format",
	Args:  cobra.MinimumNArgs(1),
	Run:   runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json",
		fmt.Sprintf("output format: %s", strings.Join(export.Formats(), ", ")))
	exportCmd.Flags().StringVar(&exportOut, "out", "",
		"output file (default stdout)")
	exportCmd.Flags().BoolVar(&analyzeJSON, "json-lines", false,
		"treat input as JSON-lines access logs instead of combined format")
}

func runExport(cmd *cobra.Command, args []string) {
	exporter, err := export.Get(exportFormat)
	if err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}

	entries, err := parseInputs(cmd.Context(), args)
	if err != nil {
		slog.Error("parse failed", "error", err)
		os.Exit(1)
	}

	a := analyzer.New(entries)
	s := a.Summary()
	s.TopPaths = a.TopPaths(cfg.Analyze.TopN)
	s.TopIPs = a.TopIPs(cfg.Analyze.TopN)

	r := export.Report{
		GeneratedAt: time.Now(),
		Source:      strings.Join(args, ", "),
		Summary:     s,
		Entries:     entries,
	}

	var w io.Writer = os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			slog.Error("export failed", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := exporter.Export(w, r); err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}
	slog.Info("export complete", "format", exportFormat, "entries", len(entries))
}
