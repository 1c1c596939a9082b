package monitor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/tailwater/sawmill/internal/model"
	"github.com/tailwater/sawmill/internal/parser"
)

const defaultPollInterval = 500 * time.Millisecond

// Option configures a Monitor.
type Option func(*Monitor)

// WithPollInterval sets how often the file is checked for new lines.
// Default: 500ms.
func WithPollInterval(d time.Duration) Option {
	return func(m *Monitor) { m.pollInterval = d }
}

// WithFromStart makes the monitor read the file from the beginning instead
// of seeking to the end first.
func WithFromStart() Option {
	return func(m *Monitor) { m.fromStart = true }
}

// Monitor follows a log file like tail -f, parsing appended lines as they
// arrive and invoking a callback for each valid entry.
type Monitor struct {
	path         string
	pollInterval time.Duration
	fromStart    bool
}

// New creates a Monitor for the given file. The file must exist.
func New(path string, opts ...Option) (*Monitor, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("monitor: open %s: %w", path, err)
	}
	m := &Monitor{path: path, pollInterval: defaultPollInterval}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Run follows the file until the context is cancelled, invoking fn for every
// entry that parses. Malformed appended lines are dropped, same as the
// batch parser.
func (m *Monitor) Run(ctx context.Context, fn func(model.Entry)) error {
	f, err := os.Open(m.path)
	if err != nil {
		return fmt.Errorf("monitor: open %s: %w", m.path, err)
	}
	defer f.Close()

	if !m.fromStart {
		if _, err := f.Seek(0, io.SeekEnd); err != nil {
			return fmt.Errorf("monitor: seek %s: %w", m.path, err)
		}
	}

	r := bufio.NewReader(f)
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	// Holds an incomplete trailing line until the writer finishes it.
	var pending string

	for {
		drained, err := drain(r, &pending, fn)
		if err != nil {
			return err
		}
		if drained {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// drain reads every complete line currently available. Returns true when at
// least one full line was consumed, so the caller retries before sleeping.
func drain(r *bufio.Reader, pending *string, fn func(model.Entry)) (bool, error) {
	read := false
	for {
		line, err := r.ReadString('\n')
		if err == io.EOF {
			if line != "" {
				slog.Debug("partial line held until complete", "len", len(line))
				*pending += line
			}
			return read, nil
		}
		if err != nil {
			return read, fmt.Errorf("monitor: read: %w", err)
		}
		read = true
		full := *pending + line
		*pending = ""
		if entry, ok := parser.ParseLine(full); ok {
			fn(entry)
		}
	}
}
