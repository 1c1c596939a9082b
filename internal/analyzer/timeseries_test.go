package analyzer

import (
	"testing"
	"time"

	"github.com/tailwater/sawmill/internal/model"
)

func tsEntry(min int, status int, size int64) model.Entry {
	e, err := model.NewEntry("1.1.1.1",
		time.Date(2023, 10, 10, 12, min, 0, 0, time.UTC), "GET", "/", status, size)
	if err != nil {
		panic(err)
	}
	return e
}

func TestAggregateByIntervalCount(t *testing.T) {
	a := New([]model.Entry{
		tsEntry(0, 200, 10),
		tsEntry(1, 200, 10),
		tsEntry(6, 200, 10),
		tsEntry(12, 500, 10),
	})

	points := a.AggregateByInterval(5*time.Minute, MetricCount)
	if len(points) != 3 {
		t.Fatalf("got %d buckets, want 3", len(points))
	}
	wantValues := []float64{2, 1, 1}
	for i, want := range wantValues {
		if points[i].Value != want {
			t.Errorf("bucket %d: value = %v, want %v", i, points[i].Value, want)
		}
	}
	if !points[1].Start.Equal(points[0].Start.Add(5 * time.Minute)) {
		t.Error("bucket starts are not interval-spaced")
	}
}

func TestAggregateByIntervalErrorRate(t *testing.T) {
	a := New([]model.Entry{
		tsEntry(0, 200, 10),
		tsEntry(1, 500, 10),
	})
	points := a.AggregateByInterval(5*time.Minute, MetricErrorRate)
	if len(points) != 1 {
		t.Fatalf("got %d buckets, want 1", len(points))
	}
	if points[0].Value != 50 {
		t.Errorf("error rate = %v, want 50", points[0].Value)
	}
}

func TestAggregateByIntervalEmpty(t *testing.T) {
	a := New(nil)
	if points := a.AggregateByInterval(time.Minute, MetricCount); points != nil {
		t.Errorf("expected nil for empty snapshot, got %v", points)
	}
}

func TestHourlyStats(t *testing.T) {
	a := New([]model.Entry{
		entry("1.1.1.1", "GET", "/a", 200, 100, 9),
		entry("1.1.1.1", "GET", "/a", 500, 50, 9),
		entry("1.1.1.1", "GET", "/b", 200, 10, 17),
	})

	stats := a.HourlyStats()
	if len(stats) != 2 {
		t.Fatalf("got %d hours, want 2", len(stats))
	}
	nine := stats[9]
	if nine.Count != 2 || nine.TotalBytes != 150 || nine.ErrorRate != 50 {
		t.Errorf("hour 9 stats = %+v", nine)
	}
	if got := a.Hours(); len(got) != 2 || got[0] != 9 || got[1] != 17 {
		t.Errorf("Hours() = %v, want [9 17]", got)
	}
}
