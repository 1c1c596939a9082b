package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tailwater/sawmill/internal/analyzer"
	"github.com/tailwater/sawmill/internal/model"
	"github.com/tailwater/sawmill/internal/parser"
	"github.com/tailwater/sawmill/internal/report"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Parse one or more access logs and print a traffic summary",
	Args:  cobra.MinimumNArgs(1),
	Run:   runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json-lines", false,
		"treat input as JSON-lines access logs instead of combined format")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	entries, err := parseInputs(cmd.Context(), args)
	if err != nil {
		slog.Error("parse failed", "error", err)
		os.Exit(1)
	}

	a := analyzer.New(entries)
	s := a.Summary()
	s.TopPaths = a.TopPaths(cfg.Analyze.TopN)
	s.TopIPs = a.TopIPs(cfg.Analyze.TopN)

	report.WriteSummary(os.Stdout, s)
	slog.Info("analysis complete", "files", len(args), "entries", len(entries))
}

// parseInputs parses every file (concurrently when more than one) and
// flattens the results, preserving argument order.
func parseInputs(ctx context.Context, paths []string) ([]model.Entry, error) {
	if analyzeJSON {
		var entries []model.Entry
		for _, path := range paths {
			p, err := parser.New(path)
			if err != nil {
				return nil, err
			}
			parsed, err := p.ParseJSON()
			if err != nil {
				return nil, err
			}
			entries = append(entries, parsed...)
		}
		return entries, nil
	}

	if len(paths) == 1 {
		p, err := parser.New(paths[0])
		if err != nil {
			return nil, err
		}
		return p.Parse()
	}

	byFile, err := parser.ParseFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	var entries []model.Entry
	for _, path := range paths {
		entries = append(entries, byFile[path]...)
	}
	return entries, nil
}
