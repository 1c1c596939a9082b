package analyzer

import (
	"sort"

	"github.com/tailwater/sawmill/internal/model"
)

// Analyzer computes read-only aggregates over a fixed snapshot of entries.
// No method mutates the input slice.
type Analyzer struct {
	entries []model.Entry
}

// New creates an Analyzer over the given entries.
func New(entries []model.Entry) *Analyzer {
	return &Analyzer{entries: entries}
}

// Len returns the number of entries in the snapshot.
func (a *Analyzer) Len() int {
	return len(a.entries)
}

// CountByStatus returns request counts keyed by status code.
func (a *Analyzer) CountByStatus() map[int]int {
	counts := make(map[int]int)
	for _, e := range a.entries {
		counts[e.Status]++
	}
	return counts
}

// CountByMethod returns request counts keyed by HTTP method.
func (a *Analyzer) CountByMethod() map[string]int {
	counts := make(map[string]int)
	for _, e := range a.entries {
		counts[e.Method]++
	}
	return counts
}

// TopPaths returns the n most requested paths, counts non-increasing.
// Ties break by label, ascending.
func (a *Analyzer) TopPaths(n int) []model.PathCount {
	counts := make(map[string]int)
	for _, e := range a.entries {
		counts[e.Path]++
	}
	return topN(counts, n)
}

// TopIPs returns the n most active client addresses.
func (a *Analyzer) TopIPs(n int) []model.PathCount {
	counts := make(map[string]int)
	for _, e := range a.entries {
		counts[e.IP]++
	}
	return topN(counts, n)
}

// TotalBytes returns the sum of response sizes.
func (a *Analyzer) TotalBytes() int64 {
	var total int64
	for _, e := range a.entries {
		total += e.Size
	}
	return total
}

// AverageSize returns the mean response size, 0 for an empty snapshot.
func (a *Analyzer) AverageSize() float64 {
	if len(a.entries) == 0 {
		return 0
	}
	return float64(a.TotalBytes()) / float64(len(a.entries))
}

// ErrorRate returns the percentage of entries with status >= 400,
// 0 for an empty snapshot.
func (a *Analyzer) ErrorRate() float64 {
	if len(a.entries) == 0 {
		return 0
	}
	var errors int
	for _, e := range a.entries {
		if e.IsError() {
			errors++
		}
	}
	return float64(errors) / float64(len(a.entries)) * 100
}

// SuccessRate returns the percentage of entries with status < 400,
// 0 for an empty snapshot. For non-empty input, ErrorRate and SuccessRate
// sum to exactly 100.
func (a *Analyzer) SuccessRate() float64 {
	if len(a.entries) == 0 {
		return 0
	}
	return 100 - a.ErrorRate()
}

// RequestsByHour groups requests by the hour component (0-23) of each
// timestamp, local to whatever zone the timestamp carries. Mixed-timezone
// inputs are not normalized.
func (a *Analyzer) RequestsByHour() map[int]int {
	counts := make(map[int]int)
	for _, e := range a.entries {
		counts[e.Timestamp.Hour()]++
	}
	return counts
}

// Summary bundles every metric into one exportable structure.
func (a *Analyzer) Summary() model.Summary {
	return model.Summary{
		TotalRequests:  len(a.entries),
		TotalBytes:     a.TotalBytes(),
		AverageSize:    a.AverageSize(),
		ErrorRate:      a.ErrorRate(),
		SuccessRate:    a.SuccessRate(),
		StatusCounts:   a.CountByStatus(),
		MethodCounts:   a.CountByMethod(),
		TopPaths:       a.TopPaths(5),
		TopIPs:         a.TopIPs(5),
		RequestsByHour: a.RequestsByHour(),
	}
}

// topN sorts a frequency map by count descending (label ascending on ties)
// and keeps the first n pairs.
func topN(counts map[string]int, n int) []model.PathCount {
	pairs := make([]model.PathCount, 0, len(counts))
	for label, count := range counts {
		pairs = append(pairs, model.PathCount{Label: label, Count: count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Label < pairs[j].Label
	})
	if n >= 0 && len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}
