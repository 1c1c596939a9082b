package filter

import (
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/tailwater/sawmill/internal/analyzer"
	"github.com/tailwater/sawmill/internal/model"
)

// Filter is a builder producing progressively narrowed views of an entry
// collection. Every method returns a new Filter over a new slice; the source
// is never mutated. Chained predicates combine with logical AND.
type Filter struct {
	entries []model.Entry
}

// New creates a Filter over the given entries.
func New(entries []model.Entry) *Filter {
	return &Filter{entries: entries}
}

func (f *Filter) where(keep func(model.Entry) bool) *Filter {
	var filtered []model.Entry
	for _, e := range f.entries {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	return &Filter{entries: filtered}
}

// ByStatus keeps entries with the exact status code.
func (f *Filter) ByStatus(status int) *Filter {
	return f.where(func(e model.Entry) bool { return e.Status == status })
}

// ByStatusRange keeps entries with min <= status <= max.
func (f *Filter) ByStatusRange(min, max int) *Filter {
	return f.where(func(e model.Entry) bool { return e.Status >= min && e.Status <= max })
}

// ByMethod keeps entries with the exact HTTP method.
func (f *Filter) ByMethod(method string) *Filter {
	return f.where(func(e model.Entry) bool { return e.Method == method })
}

// ByPathContains keeps entries whose path contains the substring.
func (f *Filter) ByPathContains(substr string) *Filter {
	return f.where(func(e model.Entry) bool { return strings.Contains(e.Path, substr) })
}

// ByTimeRange keeps entries with start <= timestamp <= end, both inclusive.
func (f *Filter) ByTimeRange(start, end time.Time) *Filter {
	return f.where(func(e model.Entry) bool {
		return !e.Timestamp.Before(start) && !e.Timestamp.After(end)
	})
}

// ByPathRegex keeps entries whose path matches the compiled pattern.
func (f *Filter) ByPathRegex(re *regexp.Regexp) *Filter {
	return f.where(func(e model.Entry) bool { return re.MatchString(e.Path) })
}

// ByPredicate keeps entries satisfying an arbitrary condition.
func (f *Filter) ByPredicate(keep func(model.Entry) bool) *Filter {
	return f.where(keep)
}

// Sample returns a uniform random subsample of n entries. When n is at least
// the current size, the filter is returned unchanged.
func (f *Filter) Sample(n int) *Filter {
	if n >= len(f.entries) {
		return f
	}
	if n < 0 {
		n = 0
	}
	idx := rand.Perm(len(f.entries))[:n]
	sampled := make([]model.Entry, 0, n)
	for _, i := range idx {
		sampled = append(sampled, f.entries[i])
	}
	return &Filter{entries: sampled}
}

// Entries returns the current filtered view.
func (f *Filter) Entries() []model.Entry {
	return f.entries
}

// Count returns the number of entries in the current view.
func (f *Filter) Count() int {
	return len(f.entries)
}

// Analyze wraps the current view in a fresh Analyzer.
func (f *Filter) Analyze() *analyzer.Analyzer {
	return analyzer.New(f.entries)
}
