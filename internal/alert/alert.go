package alert

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tailwater/sawmill/internal/model"
)

// Rule pairs a condition with an action. A rule that fires will not fire
// again until its cooldown elapses.
type Rule struct {
	Name      string
	Condition func(model.Entry) bool
	Action    func(model.Entry)
	Cooldown  time.Duration
}

// Firing records one triggered rule.
type Firing struct {
	ID    string      `json:"id"`
	Time  time.Time   `json:"time"`
	Rule  string      `json:"rule"`
	Entry model.Entry `json:"entry"`
}

// Stats summarizes firing history.
type Stats struct {
	Total  int            `json:"total"`
	ByRule map[string]int `json:"by_rule"`
	Recent []Firing       `json:"recent"`
}

// Manager evaluates rules against entries and keeps firing history.
// Safe for concurrent use.
type Manager struct {
	mu            sync.Mutex
	rules         []Rule
	lastTriggered map[string]time.Time
	history       []Firing
	now           func() time.Time
}

// NewManager creates an empty alert manager.
func NewManager() *Manager {
	return &Manager{
		lastTriggered: make(map[string]time.Time),
		now:           time.Now,
	}
}

// AddRule registers a rule. Rules are evaluated in registration order.
func (m *Manager) AddRule(r Rule) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = append(m.rules, r)
}

// Check evaluates every rule against the entry, honoring per-rule cooldowns,
// and returns the number of rules that fired.
func (m *Manager) Check(entry model.Entry) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	fired := 0
	for _, r := range m.rules {
		if !r.Condition(entry) {
			continue
		}
		if last, ok := m.lastTriggered[r.Name]; ok && now.Sub(last) < r.Cooldown {
			continue
		}
		if r.Action != nil {
			r.Action(entry)
		}
		m.lastTriggered[r.Name] = now
		m.history = append(m.history, Firing{
			ID:    uuid.NewString(),
			Time:  now,
			Rule:  r.Name,
			Entry: entry,
		})
		fired++
	}
	return fired
}

// Stats returns firing totals per rule and the ten most recent firings.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	byRule := make(map[string]int)
	for _, f := range m.history {
		byRule[f.Rule]++
	}

	recent := m.history
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	out := make([]Firing, len(recent))
	copy(out, recent)

	return Stats{
		Total:  len(m.history),
		ByRule: byRule,
		Recent: out,
	}
}
