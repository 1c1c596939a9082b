package monitor

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/tailwater/sawmill/internal/model"
)

const line = `127.0.0.1 - - [10/Oct/2023:13:55:36 +0000] "GET /api/users HTTP/1.1" 200 1234` + "\n"

func TestMonitorMissingFile(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope.log")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMonitorPicksUpAppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	if err := os.WriteFile(path, []byte(line), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	m, err := New(path, WithPollInterval(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var mu sync.Mutex
	var got []model.Entry
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		m.Run(ctx, func(e model.Entry) {
			mu.Lock()
			got = append(got, e)
			mu.Unlock()
		})
	}()

	// Give the monitor time to seek past the existing content, then append.
	time.Sleep(50 * time.Millisecond)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("open for append: %v", err)
	}
	f.WriteString(line)
	f.WriteString("garbage line\n")
	f.WriteString(line)
	f.Close()

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(got)
		mu.Unlock()
		if n >= 2 || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Errorf("got %d entries, want 2 (existing content skipped, garbage dropped)", len(got))
	}
}

func TestMonitorFromStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	if err := os.WriteFile(path, []byte(line+line), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	m, err := New(path, WithPollInterval(10*time.Millisecond), WithFromStart())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var mu sync.Mutex
	count := 0
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		m.Run(ctx, func(model.Entry) {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}()

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := count
		mu.Unlock()
		if n >= 2 || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	<-done

	if count != 2 {
		t.Errorf("got %d entries, want 2 (read from start)", count)
	}
}
