package model

import (
	"fmt"
	"time"
)

// Entry is one parsed access-log line. Constructed by the parser,
// never mutated afterwards.
type Entry struct {
	IP        string    `json:"ip" db:"ip"`
	Timestamp time.Time `json:"timestamp" db:"ts"`
	Method    string    `json:"method" db:"method"`
	Path      string    `json:"path" db:"path"`
	Status    int       `json:"status" db:"status"`
	Size      int64     `json:"size" db:"size"`
}

// NewEntry validates status and size before constructing an Entry.
// Status must be in [100, 600); size must be non-negative.
func NewEntry(ip string, ts time.Time, method, path string, status int, size int64) (Entry, error) {
	if status < 100 || status >= 600 {
		return Entry{}, fmt.Errorf("invalid status code: %d", status)
	}
	if size < 0 {
		return Entry{}, fmt.Errorf("negative response size: %d", size)
	}
	return Entry{
		IP:        ip,
		Timestamp: ts,
		Method:    method,
		Path:      path,
		Status:    status,
		Size:      size,
	}, nil
}

// IsError reports whether the entry represents a failed request (4xx/5xx).
func (e Entry) IsError() bool {
	return e.Status >= 400
}
