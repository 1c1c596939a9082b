package sawmill

import (
	"github.com/tailwater/sawmill/internal/analyzer"
	"github.com/tailwater/sawmill/internal/model"
	"github.com/tailwater/sawmill/internal/parser"
)

// Sawmill analyzes access logs. Stateless; safe for concurrent use.
type Sawmill struct {
	topN int
}

// New creates a Sawmill instance.
func New(opts ...Option) *Sawmill {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Sawmill{topN: o.topN}
}

// ParseLine parses a single combined-format log line. The second return
// value is false when the line is malformed or fails validation; no error
// is ever raised for bad input.
func ParseLine(line string) (Entry, bool) {
	e, ok := parser.ParseLine(line)
	if !ok {
		return Entry{}, false
	}
	return entryFromModel(e), true
}

// ParseFile parses a whole file and returns every valid entry. The only
// surfaced error is a missing or unreadable file.
func (s *Sawmill) ParseFile(path string) ([]Entry, error) {
	p, err := parser.New(path)
	if err != nil {
		return nil, err
	}
	parsed, err := p.Parse()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(parsed))
	for i, e := range parsed {
		entries[i] = entryFromModel(e)
	}
	return entries, nil
}

// Summarize computes the full metric bundle over the given entries.
func (s *Sawmill) Summarize(entries []Entry) Summary {
	internal := make([]model.Entry, len(entries))
	for i, e := range entries {
		internal[i] = entryToModel(e)
	}
	a := analyzer.New(internal)
	sum := a.Summary()
	sum.TopPaths = a.TopPaths(s.topN)
	sum.TopIPs = a.TopIPs(s.topN)
	return summaryFromModel(sum)
}

// AnalyzeFile parses a file and summarizes it in one call.
func (s *Sawmill) AnalyzeFile(path string) (Summary, error) {
	entries, err := s.ParseFile(path)
	if err != nil {
		return Summary{}, err
	}
	return s.Summarize(entries), nil
}

func entryFromModel(e model.Entry) Entry {
	return Entry{
		IP:        e.IP,
		Timestamp: e.Timestamp,
		Method:    e.Method,
		Path:      e.Path,
		Status:    e.Status,
		Size:      e.Size,
	}
}

func entryToModel(e Entry) model.Entry {
	return model.Entry{
		IP:        e.IP,
		Timestamp: e.Timestamp,
		Method:    e.Method,
		Path:      e.Path,
		Status:    e.Status,
		Size:      e.Size,
	}
}

func summaryFromModel(s model.Summary) Summary {
	out := Summary{
		TotalRequests:  s.TotalRequests,
		TotalBytes:     s.TotalBytes,
		AverageSize:    s.AverageSize,
		ErrorRate:      s.ErrorRate,
		SuccessRate:    s.SuccessRate,
		StatusCounts:   s.StatusCounts,
		MethodCounts:   s.MethodCounts,
		RequestsByHour: s.RequestsByHour,
	}
	for _, pc := range s.TopPaths {
		out.TopPaths = append(out.TopPaths, LabelCount{Label: pc.Label, Count: pc.Count})
	}
	for _, pc := range s.TopIPs {
		out.TopIPs = append(out.TopIPs, LabelCount{Label: pc.Label, Count: pc.Count})
	}
	return out
}
