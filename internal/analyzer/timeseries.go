package analyzer

import (
	"sort"
	"time"

	"github.com/tailwater/sawmill/internal/model"
)

// Metric selects what AggregateByInterval computes per bucket.
type Metric int

const (
	MetricCount Metric = iota
	MetricBytes
	MetricErrorRate
)

// Point is one time-series bucket.
type Point struct {
	Start time.Time `json:"start"`
	Value float64   `json:"value"`
}

// HourStats summarizes one hour of the day.
type HourStats struct {
	Count      int               `json:"count"`
	TotalBytes int64             `json:"total_bytes"`
	ErrorRate  float64           `json:"error_rate"`
	TopPaths   []model.PathCount `json:"top_paths"`
}

// AggregateByInterval buckets entries into fixed intervals anchored at the
// earliest timestamp and computes the requested metric per bucket. Buckets
// with no entries are included with a zero value. Returns nil for an empty
// snapshot or a non-positive interval.
func (a *Analyzer) AggregateByInterval(interval time.Duration, metric Metric) []Point {
	if len(a.entries) == 0 || interval <= 0 {
		return nil
	}

	minTime := a.entries[0].Timestamp
	maxTime := a.entries[0].Timestamp
	for _, e := range a.entries[1:] {
		if e.Timestamp.Before(minTime) {
			minTime = e.Timestamp
		}
		if e.Timestamp.After(maxTime) {
			maxTime = e.Timestamp
		}
	}

	buckets := make(map[int64][]model.Entry)
	for _, e := range a.entries {
		idx := int64(e.Timestamp.Sub(minTime) / interval)
		buckets[idx] = append(buckets[idx], e)
	}

	lastIdx := int64(maxTime.Sub(minTime) / interval)
	points := make([]Point, 0, lastIdx+1)
	for i := int64(0); i <= lastIdx; i++ {
		points = append(points, Point{
			Start: minTime.Add(time.Duration(i) * interval),
			Value: bucketValue(buckets[i], metric),
		})
	}
	return points
}

// HourlyStats computes per-hour-of-day statistics for hours that saw traffic.
func (a *Analyzer) HourlyStats() map[int]HourStats {
	byHour := make(map[int][]model.Entry)
	for _, e := range a.entries {
		h := e.Timestamp.Hour()
		byHour[h] = append(byHour[h], e)
	}

	stats := make(map[int]HourStats, len(byHour))
	for hour, entries := range byHour {
		sub := New(entries)
		stats[hour] = HourStats{
			Count:      len(entries),
			TotalBytes: sub.TotalBytes(),
			ErrorRate:  sub.ErrorRate(),
			TopPaths:   sub.TopPaths(3),
		}
	}
	return stats
}

// Hours returns the hours present in the snapshot, ascending. Convenience
// for rendering HourlyStats in order.
func (a *Analyzer) Hours() []int {
	seen := make(map[int]bool)
	for _, e := range a.entries {
		seen[e.Timestamp.Hour()] = true
	}
	hours := make([]int, 0, len(seen))
	for h := range seen {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

func bucketValue(entries []model.Entry, metric Metric) float64 {
	switch metric {
	case MetricBytes:
		var total int64
		for _, e := range entries {
			total += e.Size
		}
		return float64(total)
	case MetricErrorRate:
		if len(entries) == 0 {
			return 0
		}
		var errors int
		for _, e := range entries {
			if e.IsError() {
				errors++
			}
		}
		return float64(errors) / float64(len(entries)) * 100
	default:
		return float64(len(entries))
	}
}
