package export

import (
	"fmt"
	"html/template"
	"io"
	"sort"
)

func init() {
	Register("html", func() Exporter { return &HTML{} })
}

// HTML writes the report as a self-contained HTML page with inline CSS
// bar charts. No external assets.
type HTML struct{}

type htmlData struct {
	Report
	StatusRows []htmlBar
	PathRows   []htmlBar
	IPRows     []htmlBar
	HourRows   []htmlBar
}

type htmlBar struct {
	Label   string
	Count   int
	Percent float64
}

var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Access Log Report</title>
<style>
body { font-family: -apple-system, sans-serif; margin: 2rem auto; max-width: 56rem; color: #222; }
h1 { border-bottom: 2px solid #ddd; padding-bottom: .5rem; }
table { border-collapse: collapse; width: 100%; margin-bottom: 2rem; }
th, td { text-align: left; padding: .35rem .6rem; border-bottom: 1px solid #eee; }
.bar { background: #4a90d9; height: .9rem; display: inline-block; border-radius: 2px; }
.meta { color: #777; }
</style>
</head>
<body>
<h1>Access Log Report</h1>
<p class="meta">Source: {{.Source}} &middot; Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>

<h2>Overview</h2>
<table>
<tr><th>Total requests</th><td>{{.Summary.TotalRequests}}</td></tr>
<tr><th>Total bytes</th><td>{{.Summary.TotalBytes}}</td></tr>
<tr><th>Average size</th><td>{{printf "%.2f" .Summary.AverageSize}} bytes</td></tr>
<tr><th>Error rate</th><td>{{printf "%.2f" .Summary.ErrorRate}}%</td></tr>
<tr><th>Success rate</th><td>{{printf "%.2f" .Summary.SuccessRate}}%</td></tr>
</table>

<h2>Status Codes</h2>
<table>{{range .StatusRows}}
<tr><td>{{.Label}}</td><td>{{.Count}}</td><td><span class="bar" style="width: {{printf "%.1f" .Percent}}%"></span></td></tr>{{end}}
</table>

<h2>Top Paths</h2>
<table>{{range .PathRows}}
<tr><td>{{.Label}}</td><td>{{.Count}}</td><td><span class="bar" style="width: {{printf "%.1f" .Percent}}%"></span></td></tr>{{end}}
</table>

<h2>Top Client IPs</h2>
<table>{{range .IPRows}}
<tr><td>{{.Label}}</td><td>{{.Count}}</td><td><span class="bar" style="width: {{printf "%.1f" .Percent}}%"></span></td></tr>{{end}}
</table>

<h2>Requests by Hour</h2>
<table>{{range .HourRows}}
<tr><td>{{.Label}}</td><td>{{.Count}}</td><td><span class="bar" style="width: {{printf "%.1f" .Percent}}%"></span></td></tr>{{end}}
</table>
</body>
</html>
`))

func (x *HTML) Export(w io.Writer, r Report) error {
	s := r.Summary

	data := htmlData{Report: r}

	statuses := make([]int, 0, len(s.StatusCounts))
	for status := range s.StatusCounts {
		statuses = append(statuses, status)
	}
	sort.Ints(statuses)
	for _, status := range statuses {
		data.StatusRows = append(data.StatusRows, bar(fmt.Sprintf("%d", status), s.StatusCounts[status], s.TotalRequests))
	}
	for _, pc := range s.TopPaths {
		data.PathRows = append(data.PathRows, bar(pc.Label, pc.Count, s.TotalRequests))
	}
	for _, pc := range s.TopIPs {
		data.IPRows = append(data.IPRows, bar(pc.Label, pc.Count, s.TotalRequests))
	}

	hours := make([]int, 0, len(s.RequestsByHour))
	for h := range s.RequestsByHour {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	for _, h := range hours {
		data.HourRows = append(data.HourRows, bar(fmt.Sprintf("%02d:00", h), s.RequestsByHour[h], s.TotalRequests))
	}

	if err := htmlTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("html export: %w", err)
	}
	return nil
}

func bar(label string, count, total int) htmlBar {
	var pct float64
	if total > 0 {
		pct = float64(count) / float64(total) * 100
	}
	return htmlBar{Label: label, Count: count, Percent: pct}
}
