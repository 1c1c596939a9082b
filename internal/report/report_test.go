package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tailwater/sawmill/internal/model"
)

func TestBarChartScalesToWidth(t *testing.T) {
	var buf bytes.Buffer
	BarChart(&buf, []model.PathCount{
		{Label: "/a", Count: 10},
		{Label: "/b", Count: 5},
	}, 10)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if got := strings.Count(lines[0], "█"); got != 10 {
		t.Errorf("max row has %d bar cells, want 10", got)
	}
	if got := strings.Count(lines[1], "█"); got != 5 {
		t.Errorf("half row has %d bar cells, want 5", got)
	}
}

func TestBarChartEmpty(t *testing.T) {
	var buf bytes.Buffer
	BarChart(&buf, nil, 10)
	if !strings.Contains(buf.String(), "no data") {
		t.Errorf("empty chart output = %q", buf.String())
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteSummaryContainsSections(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, model.Summary{
		TotalRequests:  3,
		TotalBytes:     3000,
		AverageSize:    1000,
		ErrorRate:      33.33,
		SuccessRate:    66.67,
		StatusCounts:   map[int]int{200: 2, 500: 1},
		TopPaths:       []model.PathCount{{Label: "/api", Count: 3}},
		TopIPs:         []model.PathCount{{Label: "1.1.1.1", Count: 3}},
		RequestsByHour: map[int]int{13: 3},
	})

	out := buf.String()
	for _, want := range []string{
		"ACCESS LOG SUMMARY",
		"Total requests:  3",
		"500 (Internal Server Error",
		"13:00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestStatusName(t *testing.T) {
	if got := StatusName(404); got != "Not Found" {
		t.Errorf("StatusName(404) = %q", got)
	}
	if got := StatusName(418); got != "Unknown" {
		t.Errorf("StatusName(418) = %q, want Unknown", got)
	}
}
