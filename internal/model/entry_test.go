package model

import (
	"testing"
	"time"
)

func TestNewEntryValidation(t *testing.T) {
	ts := time.Date(2023, 10, 10, 13, 55, 36, 0, time.UTC)

	tests := []struct {
		name    string
		status  int
		size    int64
		wantErr bool
	}{
		{"ok 200", 200, 1234, false},
		{"ok 100 lower bound", 100, 0, false},
		{"ok 599 upper bound", 599, 10, false},
		{"status 600 out of range", 600, 10, true},
		{"status 999 out of range", 999, 10, true},
		{"status 99 below range", 99, 10, true},
		{"negative size", 200, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEntry("127.0.0.1", ts, "GET", "/api/users", tt.status, tt.size)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEntry(status=%d, size=%d) error = %v, wantErr %v",
					tt.status, tt.size, err, tt.wantErr)
			}
		})
	}
}

func TestIsError(t *testing.T) {
	ts := time.Now()
	ok, _ := NewEntry("1.2.3.4", ts, "GET", "/", 200, 0)
	if ok.IsError() {
		t.Error("status 200 should not be an error")
	}
	bad, _ := NewEntry("1.2.3.4", ts, "GET", "/", 404, 0)
	if !bad.IsError() {
		t.Error("status 404 should be an error")
	}
}
