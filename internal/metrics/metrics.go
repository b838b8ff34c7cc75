package metrics

import (
	"sync"
	"time"
)

type operationStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about store operations and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu          sync.Mutex
	stats       map[string]*operationStats
	gamesStored int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*operationStats),
		otel:  otel,
	}
}

// RecordStoreOperation counts a store call and stores its latency. err is the
// operation's failure (duplicate / not found), nil on success.
func (r *Recorder) RecordStoreOperation(op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[op]
	if !ok {
		stats = &operationStats{}
		r.stats[op] = stats
	}
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStoreOperation(op, duration, err)
	}
}

// SetGamesStored records the current number of stored games.
func (r *Recorder) SetGamesStored(n int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	delta := n - r.gamesStored
	r.gamesStored = n
	r.mu.Unlock()

	if r.otel != nil && delta != 0 {
		r.otel.adjustGamesStored(int64(delta))
	}
}

// AddGamesStored adjusts the stored-games gauge by delta.
func (r *Recorder) AddGamesStored(delta int) {
	if r == nil || delta == 0 {
		return
	}
	r.mu.Lock()
	r.gamesStored += delta
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.adjustGamesStored(int64(delta))
	}
}

// GamesStored returns the last recorded number of stored games.
func (r *Recorder) GamesStored() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gamesStored
}

// OperationCalls returns the total calls recorded for an operation.
func (r *Recorder) OperationCalls(op string) int {
	return r.Snapshot(op).Calls
}

// OperationErrors returns the failed calls recorded for an operation.
func (r *Recorder) OperationErrors(op string) int {
	return r.Snapshot(op).Errors
}

// Snapshot is a copy of the stats recorded for one operation.
type Snapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(op string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[op]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
