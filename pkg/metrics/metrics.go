// Package metrics records assertion failures reported by the
// failure reporters.
package metrics

import "sync"

// AssertionMetrics defines the interface for recording assertion
// failures.
type AssertionMetrics interface {
	// RecordFailure records one failed assertion of the given
	// descriptor kind. strategy is empty for standard
	// comparisons.
	RecordFailure(kind, strategy string)
}

// NoopMetrics is a no-op implementation of AssertionMetrics
// useful for testing or when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordFailure(_, _ string) {}

// InMemoryMetrics counts failures per kind and strategy. It is
// safe for concurrent use.
type InMemoryMetrics struct {
	mu       sync.Mutex
	failures map[string]int
	total    int
}

// NewInMemoryMetrics creates an empty InMemoryMetrics.
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{failures: make(map[string]int)}
}

func (m *InMemoryMetrics) RecordFailure(kind, strategy string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[kind+":"+strategy]++
	m.total++
}

// FailureCount returns the count for a kind+strategy combination.
func (m *InMemoryMetrics) FailureCount(kind, strategy string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failures[kind+":"+strategy]
}

// Total returns the number of failures recorded.
func (m *InMemoryMetrics) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}
