package parser

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/tailwater/sawmill/internal/model"
)

// linePattern matches the fixed combined-log shape:
//
//	ip - - [timestamp] "METHOD path HTTP/version" status size
var linePattern = regexp.MustCompile(
	`^(\S+) \S+ \S+ \[([^\]]+)\] "(\S+) (\S+) \S+" (\d+) (\d+)`)

// timestampLayout is the access-log time format, e.g. 10/Oct/2023:13:55:36 +0000.
const timestampLayout = "02/Jan/2006:15:04:05 -0700"

// Parser converts access-log text into model.Entry values. Lines that do not
// match the expected shape, or that fail validation, are dropped; per-line
// problems never surface as errors.
type Parser struct {
	path string
}

// New creates a Parser for the given file. The only surfaced failure is a
// missing file, reported immediately; errors.Is(err, fs.ErrNotExist) holds.
func New(path string) (*Parser, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("parser: open %s: %w", path, err)
	}
	return &Parser{path: path}, nil
}

// Path returns the file this parser reads from.
func (p *Parser) Path() string {
	return p.path
}

// ParseLine parses a single log line. The second return value is false when
// the line does not match the pattern, the timestamp does not parse, or the
// status/size invariants fail.
func ParseLine(line string) (model.Entry, bool) {
	m := linePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return model.Entry{}, false
	}

	ts, err := time.Parse(timestampLayout, m[2])
	if err != nil {
		slog.Debug("dropping line with bad timestamp", "timestamp", m[2])
		return model.Entry{}, false
	}

	status, err := strconv.Atoi(m[5])
	if err != nil {
		return model.Entry{}, false
	}
	size, err := strconv.ParseInt(m[6], 10, 64)
	if err != nil {
		return model.Entry{}, false
	}

	// Equal paths written in different unicode forms should aggregate together.
	path := norm.NFC.String(m[4])

	entry, err := model.NewEntry(m[1], ts, m[3], path, status, size)
	if err != nil {
		slog.Debug("dropping invalid entry", "error", err)
		return model.Entry{}, false
	}
	return entry, true
}

// Parse reads the whole file and returns every valid entry. Suited to files
// that fit in memory; use Stream for larger inputs.
func (p *Parser) Parse() ([]model.Entry, error) {
	rc, err := openSource(p.path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return parseAll(rc)
}

// parseAll scans every line of r and keeps the entries that parse.
func parseAll(r io.Reader) ([]model.Entry, error) {
	var entries []model.Entry
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if entry, ok := ParseLine(sc.Text()); ok {
			entries = append(entries, entry)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser: scan: %w", err)
	}
	return entries, nil
}

// Stream returns a lazy, single-pass iterator over the file's entries.
// The stream exhausts the underlying handle and cannot be restarted;
// callers must Close it.
func (p *Parser) Stream() (*Stream, error) {
	rc, err := openSource(p.path)
	if err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Stream{rc: rc, sc: sc}, nil
}

// Stream is a single-pass iterator over parsed entries.
type Stream struct {
	rc   io.ReadCloser
	sc   *bufio.Scanner
	curr model.Entry
	err  error
}

// Next advances to the next valid entry, skipping malformed lines.
// It returns false when the input is exhausted or a read error occurred.
func (s *Stream) Next() bool {
	for s.sc.Scan() {
		if entry, ok := ParseLine(s.sc.Text()); ok {
			s.curr = entry
			return true
		}
	}
	if err := s.sc.Err(); err != nil {
		s.err = fmt.Errorf("parser: scan: %w", err)
	}
	return false
}

// Entry returns the entry produced by the last successful Next.
func (s *Stream) Entry() model.Entry {
	return s.curr
}

// Err returns the first read error encountered, if any.
func (s *Stream) Err() error {
	return s.err
}

// Close releases the underlying file handle.
func (s *Stream) Close() error {
	return s.rc.Close()
}
