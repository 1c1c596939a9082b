package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/tailwater/sawmill/internal/model"
)

func testReport() Report {
	ts := time.Date(2023, 10, 10, 13, 55, 36, 0, time.UTC)
	e, _ := model.NewEntry("127.0.0.1", ts, "GET", "/api/users", 200, 1234)
	return Report{
		GeneratedAt: ts,
		Source:      "access.log",
		Summary: model.Summary{
			TotalRequests:  2,
			TotalBytes:     1334,
			AverageSize:    667,
			ErrorRate:      50,
			SuccessRate:    50,
			StatusCounts:   map[int]int{200: 1, 500: 1},
			MethodCounts:   map[string]int{"GET": 2},
			TopPaths:       []model.PathCount{{Label: "/api/users", Count: 2}},
			TopIPs:         []model.PathCount{{Label: "127.0.0.1", Count: 2}},
			RequestsByHour: map[int]int{13: 2},
		},
		Entries: []model.Entry{e},
	}
}

func TestRegistryKnowsAllFormats(t *testing.T) {
	for _, name := range []string{"json", "csv", "markdown", "html"} {
		if _, err := Get(name); err != nil {
			t.Errorf("Get(%q) error: %v", name, err)
		}
	}
	if _, err := Get("yaml"); err == nil {
		t.Error("Get(yaml) should fail")
	}
	if got := Formats(); len(got) < 4 {
		t.Errorf("Formats() = %v, want at least 4 formats", got)
	}
}

func TestJSONExportRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	x, _ := Get("json")
	if err := x.Export(&buf, testReport()); err != nil {
		t.Fatalf("Export error: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Summary.TotalRequests != 2 {
		t.Errorf("TotalRequests = %d, want 2", decoded.Summary.TotalRequests)
	}
}

func TestCSVExportWritesHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	x, _ := Get("csv")
	if err := x.Export(&buf, testReport()); err != nil {
		t.Fatalf("Export error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(lines))
	}
	if lines[0] != "ip,timestamp,method,path,status,size" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "127.0.0.1") || !strings.Contains(lines[1], "1234") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestMarkdownExportContainsSections(t *testing.T) {
	var buf bytes.Buffer
	x, _ := Get("markdown")
	if err := x.Export(&buf, testReport()); err != nil {
		t.Fatalf("Export error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"# Access Log Report", "## Status Codes", "| 200 | 1 |", "/api/users"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestHTMLExportIsWellFormedPage(t *testing.T) {
	var buf bytes.Buffer
	x, _ := Get("html")
	if err := x.Export(&buf, testReport()); err != nil {
		t.Fatalf("Export error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<!DOCTYPE html>", "</html>", "Access Log Report", "127.0.0.1"} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %q", want)
		}
	}
}
