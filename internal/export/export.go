package export

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/tailwater/sawmill/internal/model"
)

// Report is the unit handed to exporters: a computed summary plus the
// entries it was derived from.
type Report struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Source      string        `json:"source"`
	Summary     model.Summary `json:"summary"`
	Entries     []model.Entry `json:"-"`
}

// Exporter writes a report in one output format.
type Exporter interface {
	Export(w io.Writer, r Report) error
}

// Constructor creates a new Exporter instance.
type Constructor func() Exporter

var registry = map[string]Constructor{}

// Register adds an exporter constructor under the given format name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the exporter for the given format name.
func Get(name string) (Exporter, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown export format: %s", name)
	}
	return ctor(), nil
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
