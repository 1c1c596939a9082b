// Package report renders summaries for terminal display: plain text plus
// dependency-free ASCII bar charts.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tailwater/sawmill/internal/model"
)

const defaultChartWidth = 40

// BarChart renders a horizontal ASCII bar chart for the given label/value
// pairs, scaled to width columns. Rows render in the order given.
func BarChart(w io.Writer, rows []model.PathCount, width int) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no data)")
		return
	}
	if width <= 0 {
		width = defaultChartWidth
	}

	maxCount := 0
	maxLabel := 0
	for _, r := range rows {
		if r.Count > maxCount {
			maxCount = r.Count
		}
		if len(r.Label) > maxLabel {
			maxLabel = len(r.Label)
		}
	}

	for _, r := range rows {
		barLen := 0
		if maxCount > 0 {
			barLen = r.Count * width / maxCount
		}
		fmt.Fprintf(w, "%-*s | %s %d\n", maxLabel, r.Label, strings.Repeat("█", barLen), r.Count)
	}
}

// FormatBytes renders a byte count in human-readable units.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMGTP"[exp])
}

// WriteSummary renders a full human-readable summary to w.
func WriteSummary(w io.Writer, s model.Summary) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "ACCESS LOG SUMMARY")
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "\nTotal requests:  %d\n", s.TotalRequests)
	fmt.Fprintf(w, "Total data:      %s\n", FormatBytes(s.TotalBytes))
	fmt.Fprintf(w, "Average size:    %s\n", FormatBytes(int64(s.AverageSize)))
	fmt.Fprintf(w, "Success rate:    %.2f%%\n", s.SuccessRate)
	fmt.Fprintf(w, "Error rate:      %.2f%%\n", s.ErrorRate)

	fmt.Fprintf(w, "\nTop paths:\n")
	BarChart(w, s.TopPaths, defaultChartWidth)

	fmt.Fprintf(w, "\nTop client IPs:\n")
	BarChart(w, s.TopIPs, defaultChartWidth)

	fmt.Fprintf(w, "\nStatus codes:\n")
	statuses := make([]int, 0, len(s.StatusCounts))
	for status := range s.StatusCounts {
		statuses = append(statuses, status)
	}
	sort.Ints(statuses)
	for _, status := range statuses {
		fmt.Fprintf(w, "  %d (%-20s): %d\n", status, StatusName(status), s.StatusCounts[status])
	}

	fmt.Fprintf(w, "\nRequests by hour:\n")
	hours := make([]int, 0, len(s.RequestsByHour))
	for h := range s.RequestsByHour {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	hourRows := make([]model.PathCount, 0, len(hours))
	for _, h := range hours {
		hourRows = append(hourRows, model.PathCount{
			Label: fmt.Sprintf("%02d:00", h),
			Count: s.RequestsByHour[h],
		})
	}
	BarChart(w, hourRows, defaultChartWidth)

	fmt.Fprintln(w, rule)
}

// StatusName returns the conventional reason phrase for common status codes.
func StatusName(status int) string {
	names := map[int]string{
		200: "OK",
		201: "Created",
		204: "No Content",
		301: "Moved Permanently",
		302: "Found",
		304: "Not Modified",
		400: "Bad Request",
		401: "Unauthorized",
		403: "Forbidden",
		404: "Not Found",
		405: "Method Not Allowed",
		500: "Internal Server Error",
		502: "Bad Gateway",
		503: "Service Unavailable",
	}
	if name, ok := names[status]; ok {
		return name
	}
	return "Unknown"
}
