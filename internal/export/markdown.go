package export

import (
	"fmt"
	"io"
	"sort"
)

func init() {
	Register("markdown", func() Exporter { return &Markdown{} })
}

// Markdown writes the report as a human-readable markdown document.
type Markdown struct{}

func (x *Markdown) Export(w io.Writer, r Report) error {
	s := r.Summary

	var err error
	p := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	p("# Access Log Report\n\n")
	if r.Source != "" {
		p("Source: `%s`\n\n", r.Source)
	}
	p("Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))

	p("## Overview\n\n")
	p("- **Total requests**: %d\n", s.TotalRequests)
	p("- **Total bytes**: %d\n", s.TotalBytes)
	p("- **Average response size**: %.2f bytes\n", s.AverageSize)
	p("- **Error rate**: %.2f%%\n", s.ErrorRate)
	p("- **Success rate**: %.2f%%\n\n", s.SuccessRate)

	p("## Status Codes\n\n| Code | Count |\n|------|-------|\n")
	statuses := make([]int, 0, len(s.StatusCounts))
	for status := range s.StatusCounts {
		statuses = append(statuses, status)
	}
	sort.Ints(statuses)
	for _, status := range statuses {
		p("| %d | %d |\n", status, s.StatusCounts[status])
	}

	p("\n## Top Paths\n\n| Path | Requests |\n|------|----------|\n")
	for _, pc := range s.TopPaths {
		p("| %s | %d |\n", pc.Label, pc.Count)
	}

	p("\n## Top Client IPs\n\n| IP | Requests |\n|----|----------|\n")
	for _, pc := range s.TopIPs {
		p("| %s | %d |\n", pc.Label, pc.Count)
	}

	if err != nil {
		return fmt.Errorf("markdown export: %w", err)
	}
	return nil
}
