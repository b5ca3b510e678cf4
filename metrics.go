package cgraph

import (
	"sync/atomic"
	"time"
)

// QueryKind identifies a query family.
type QueryKind int

const (
	QueryShortestPaths QueryKind = iota
	QueryShortestPath
	QueryBFS
	QueryDFS
	QueryComponents
	numQueryKinds
)

func (k QueryKind) String() string {
	switch k {
	case QueryShortestPaths:
		return "shortest_paths"
	case QueryShortestPath:
		return "shortest_path"
	case QueryBFS:
		return "bfs"
	case QueryDFS:
		return "dfs"
	case QueryComponents:
		return "components"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Implementations must be safe for concurrent use: queries against one Graph
// may run on many goroutines at once.
type MetricsCollector interface {
	// RecordCompile is called after each compile pass.
	// nodes and edges describe the compiled graph (zero on failure).
	RecordCompile(nodes, edges int, duration time.Duration, err error)

	// RecordQuery is called after each query.
	// settled is the number of nodes the query expanded.
	RecordQuery(kind QueryKind, settled int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCompile(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordQuery(QueryKind, int, time.Duration)    {}

type queryCounters struct {
	count   atomic.Int64
	settled atomic.Int64
	nanos   atomic.Int64
}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CompileCount  atomic.Int64
	CompileErrors atomic.Int64
	CompileNanos  atomic.Int64

	queries [numQueryKinds]queryCounters
}

// RecordCompile implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompile(nodes, edges int, duration time.Duration, err error) {
	b.CompileCount.Add(1)
	b.CompileNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CompileErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(kind QueryKind, settled int, duration time.Duration) {
	if kind < 0 || kind >= numQueryKinds {
		return
	}
	q := &b.queries[kind]
	q.count.Add(1)
	q.settled.Add(int64(settled))
	q.nanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		CompileCount:  b.CompileCount.Load(),
		CompileErrors: b.CompileErrors.Load(),
		CompileNanos:  b.CompileNanos.Load(),
		Queries:       make(map[QueryKind]QueryStats, numQueryKinds),
	}
	for k := QueryKind(0); k < numQueryKinds; k++ {
		q := &b.queries[k]
		count := q.count.Load()
		if count == 0 {
			continue
		}
		stats.Queries[k] = QueryStats{
			Count:    count,
			Settled:  q.settled.Load(),
			AvgNanos: q.nanos.Load() / count,
		}
	}
	return stats
}

// QueryStats summarizes one query family.
type QueryStats struct {
	Count    int64
	Settled  int64
	AvgNanos int64
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CompileCount  int64
	CompileErrors int64
	CompileNanos  int64
	Queries       map[QueryKind]QueryStats
}
