package testutil

import (
	"callguard/internal/failopen"
	"callguard/internal/fingerprint"
	"callguard/internal/models"
	"callguard/internal/providers"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (e LogEntry) Message() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Contains reports whether any entry at level has a message containing substr.
func (m *MockLogger) Contains(level, substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Logs {
		if e.Level == level && strings.Contains(e.Message(), substr) {
			return true
		}
	}
	return false
}

// MockMetrics implements providers.MetricsProviderInterface with counters.
type MockMetrics struct {
	mu             sync.Mutex
	CallEvents     int
	Outcomes       map[string]int
	LookupFailures map[string]int
	Teardowns      map[string]int
	CacheHits      int
	CacheMisses    int
	InFlight       int
	Persisted      int
}

func (m *MockMetrics) inc(target *map[string]int, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if *target == nil {
		*target = make(map[string]int)
	}
	(*target)[key]++
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCallEvents() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallEvents++
}
func (m *MockMetrics) IncOutcome(variant string) { m.inc(&m.Outcomes, variant) }
func (m *MockMetrics) IncLookupFailure(component, category string) {
	m.inc(&m.LookupFailures, component+"/"+category)
}
func (m *MockMetrics) ObserveLookupDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncOverlayTeardown(reason string)               { m.inc(&m.Teardowns, reason) }
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) SetInFlightTasks(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InFlight = count
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Persisted++
}

// Teardown returns the teardown count for reason.
func (m *MockMetrics) Teardown(reason string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Teardowns[reason]
}

// MockReporter implements failopen.Reporter.
type MockReporter struct {
	mu       sync.Mutex
	Failures []ReportedFailure
}

type ReportedFailure struct {
	Component string
	Category  failopen.Category
	Err       error
}

func (m *MockReporter) ReportFailure(component string, category failopen.Category, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failures = append(m.Failures, ReportedFailure{Component: component, Category: category, Err: err})
}

// MockReputation implements reputation.ClientInterface.
type MockReputation struct {
	mu      sync.Mutex
	Records []models.ReputationRecord
	Failed  bool
	Delay   time.Duration
	PanicOn string
	Calls   []fingerprint.Fingerprint
}

func (m *MockReputation) Lookup(ctx context.Context, fp fingerprint.Fingerprint) ([]models.ReputationRecord, bool) {
	m.mu.Lock()
	m.Calls = append(m.Calls, fp)
	records, failed, delay, panicOn := m.Records, m.Failed, m.Delay, m.PanicOn
	m.mu.Unlock()

	if panicOn != "" && fp == fingerprint.Generate(panicOn) {
		panic("reputation mock panic")
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return []models.ReputationRecord{}, false
		}
	}
	if failed {
		return []models.ReputationRecord{}, false
	}
	out := make([]models.ReputationRecord, len(records))
	copy(out, records)
	return out, true
}

func (m *MockReputation) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockGate implements entitlement.GateInterface.
type MockGate struct {
	mu       sync.Mutex
	Entitled bool
	Calls    []string
}

func (m *MockGate) IsEntitled(_ context.Context, accountID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, accountID)
	return m.Entitled
}

func (m *MockGate) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockIdentity implements identity.StoreInterface.
type MockIdentity struct {
	ID string
}

func (m *MockIdentity) AccountID() (string, bool) {
	return m.ID, m.ID != ""
}

// MockCompressor is an identity compressor unless the Fn hooks are set.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	return val, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	return val, nil
}

func (m *MockCompressor) Close() { m.Closed = true }
