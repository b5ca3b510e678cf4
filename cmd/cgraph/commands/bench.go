package commands

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/cgraph"
	"github.com/hupe1980/cgraph/internal/baseline"
)

var benchQueries int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare compiled queries with the uncompiled baseline",
	Long: `Run every query family against the compiled graph and against a baseline
that walks the identity-keyed document graph directly, then report average
latency, speedup, compile cost and the number of queries after which
compiling pays off.

Sources are taken from the nodes in document order; --queries limits how many
are used (0 means all nodes).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if benchQueries < 0 {
			return fmt.Errorf("--queries must not be negative, got %d", benchQueries)
		}

		src, err := loadSource()
		if err != nil {
			return err
		}

		metrics := &cgraph.BasicMetricsCollector{}
		g, err := compileSource(cmd, src, cgraph.WithMetricsCollector(metrics))
		if err != nil {
			return err
		}

		sources := slices.Collect(src.Nodes())
		if benchQueries > 0 && benchQueries < len(sources) {
			sources = sources[:benchQueries]
		}

		report := runBench(src, g, sources, metrics)
		return renderReport(cmd.OutOrStdout(), report)
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchQueries, "queries", 0, "number of source nodes to query (0 = all)")
	rootCmd.AddCommand(benchCmd)
}

// benchResult holds the average latencies of one query family.
type benchResult struct {
	Query    cgraph.QueryKind
	Runs     int
	Compiled time.Duration
	Baseline time.Duration
	Settled  int64
}

// Speedup is the baseline latency divided by the compiled latency.
func (r benchResult) Speedup() float64 {
	if r.Compiled <= 0 {
		return math.Inf(1)
	}
	return float64(r.Baseline) / float64(r.Compiled)
}

type benchReport struct {
	Graph   string
	Compile time.Duration
	Results []benchResult

	// BreakEven is the number of single-source queries after which the
	// compile cost is recovered, or -1 when compiled queries are not faster.
	BreakEven int
}

func runBench(src *cgraph.MapGraph[string], g *cgraph.Graph[string], sources []string, metrics *cgraph.BasicMetricsCollector) benchReport {
	compileNanos := metrics.GetStats().CompileNanos

	targets := make([]string, len(sources))
	for i := range sources {
		targets[i] = sources[(i+len(sources)/2)%len(sources)]
	}

	results := []benchResult{
		measure(cgraph.QueryShortestPaths, len(sources),
			func(i int) { g.ShortestPaths(sources[i]) },
			func(i int) { baseline.ShortestPaths[string](src, sources[i], defaultWeight) }),
		measure(cgraph.QueryShortestPath, len(sources),
			func(i int) { g.ShortestPath(sources[i], targets[i]) },
			func(i int) { baseline.ShortestPathLength[string](src, sources[i], targets[i], defaultWeight) }),
		measure(cgraph.QueryBFS, len(sources),
			func(i int) { g.BFS(sources[i]) },
			func(i int) { baseline.BFS[string](src, sources[i]) }),
		measure(cgraph.QueryComponents, 1,
			func(int) { g.Components() },
			func(int) { baseline.Components[string](src) }),
	}

	stats := metrics.GetStats()
	for i := range results {
		if q, ok := stats.Queries[results[i].Query]; ok && q.Count > 0 {
			results[i].Settled = q.Settled / q.Count
		}
	}

	return benchReport{
		Graph:     g.String(),
		Compile:   time.Duration(compileNanos),
		Results:   results,
		BreakEven: breakEven(time.Duration(compileNanos), results[0]),
	}
}

// measure runs compiled and baseline n times each and returns the averages.
func measure(kind cgraph.QueryKind, n int, compiled, base func(i int)) benchResult {
	r := benchResult{Query: kind, Runs: n}
	if n == 0 {
		return r
	}

	start := time.Now()
	for i := 0; i < n; i++ {
		compiled(i)
	}
	r.Compiled = time.Since(start) / time.Duration(n)

	start = time.Now()
	for i := 0; i < n; i++ {
		base(i)
	}
	r.Baseline = time.Since(start) / time.Duration(n)

	return r
}

func breakEven(compile time.Duration, r benchResult) int {
	saved := r.Baseline - r.Compiled
	if r.Runs == 0 || saved <= 0 {
		return -1
	}
	return int(math.Ceil(float64(compile) / float64(saved)))
}
