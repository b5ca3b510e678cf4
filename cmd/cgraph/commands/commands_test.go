package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cgraph"
)

const testGraph = `
directed: false
nodes: [A, B, C, D, E]
edges:
  - {from: A, to: B, weight: 1}
  - {from: A, to: C, weight: 4}
  - {from: B, to: D, weight: 2}
  - {from: C, to: D, weight: 1}
`

func writeGraph(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func runCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	graphFile = ""
	verbose = false
	jsonLogs = false
	defaultWeight = cgraph.DefaultWeight
	benchQueries = 0

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()

	return outBuf.String(), errBuf.String(), err
}

func TestInfo(t *testing.T) {
	path := writeGraph(t, testGraph)

	stdout, _, err := runCmd(t, "-f", path, "info")
	require.NoError(t, err)
	assert.Contains(t, stdout, "CompiledGraph(nodes=5, edges=4)")
	assert.Contains(t, stdout, "directed:   false")
	assert.Contains(t, stdout, "components: 2")
}

func TestSSSP(t *testing.T) {
	path := writeGraph(t, testGraph)

	stdout, _, err := runCmd(t, "-f", path, "sssp", "A")
	require.NoError(t, err)
	assert.Equal(t, "A\t0\nB\t1\nD\t3\nC\t4\n", stdout)

	_, _, err = runCmd(t, "-f", path, "sssp", "Z")
	assert.ErrorContains(t, err, `unknown node "Z"`)
}

func TestPath(t *testing.T) {
	path := writeGraph(t, testGraph)

	stdout, _, err := runCmd(t, "-f", path, "path", "A", "D")
	require.NoError(t, err)
	assert.Equal(t, "distance: 3\npath:     A -> B -> D\n", stdout)

	_, _, err = runCmd(t, "-f", path, "path", "A", "E")
	assert.ErrorContains(t, err, "no path")
}

func TestTraversals(t *testing.T) {
	path := writeGraph(t, testGraph)

	stdout, _, err := runCmd(t, "-f", path, "bfs", "A")
	require.NoError(t, err)
	assert.Equal(t, "A B C D\n", stdout)

	stdout, _, err = runCmd(t, "-f", path, "dfs", "A")
	require.NoError(t, err)
	assert.Equal(t, "A B D C\n", stdout)
}

func TestComponents(t *testing.T) {
	path := writeGraph(t, testGraph)

	stdout, _, err := runCmd(t, "-f", path, "components")
	require.NoError(t, err)
	assert.Equal(t, "A B C D\nE\n", stdout)
}

func TestDefaultWeight(t *testing.T) {
	path := writeGraph(t, `
edges:
  - {from: A, to: B}
  - {from: B, to: C}
`)

	stdout, _, err := runCmd(t, "-f", path, "--default-weight", "2.5", "sssp", "A")
	require.NoError(t, err)
	assert.Equal(t, "A\t0\nB\t2.5\nC\t5\n", stdout)
}

func TestVerboseLogging(t *testing.T) {
	path := writeGraph(t, testGraph)

	_, stderr, err := runCmd(t, "-f", path, "-v", "bfs", "A")
	require.NoError(t, err)
	assert.Contains(t, stderr, "compile completed")
	assert.Contains(t, stderr, "query=bfs")

	_, stderr, err = runCmd(t, "-f", path, "-v", "--json", "bfs", "A")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"compile completed"`)

	_, stderr, err = runCmd(t, "-f", path, "bfs", "A")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestBench(t *testing.T) {
	path := writeGraph(t, testGraph)

	stdout, _, err := runCmd(t, "-f", path, "bench", "--queries", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cgraph bench")
	assert.Contains(t, stdout, "shortest_paths")
	assert.Contains(t, stdout, "shortest_path ")
	assert.Contains(t, stdout, "bfs")
	assert.Contains(t, stdout, "components")
	assert.Contains(t, stdout, "break-even")

	_, _, err = runCmd(t, "-f", path, "bench", "--queries", "-1")
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	_, _, err := runCmd(t, "info")
	assert.ErrorIs(t, err, errNoGraphFile)

	_, _, err = runCmd(t, "-f", filepath.Join(t.TempDir(), "missing.yaml"), "info")
	assert.ErrorContains(t, err, "load graph")

	path := writeGraph(t, "edges:\n  - {from: A}\n")
	_, _, err = runCmd(t, "-f", path, "info")
	assert.ErrorContains(t, err, "edge endpoint is empty")
}

func TestRunBench(t *testing.T) {
	src := cgraph.NewMapGraph[string](false)
	src.AddEdge("A", "B", 1)
	src.AddEdge("B", "C", 1)

	metrics := &cgraph.BasicMetricsCollector{}
	g, err := cgraph.Compile[string](src, cgraph.WithMetricsCollector(metrics))
	require.NoError(t, err)

	report := runBench(src, g, []string{"A", "B", "C"}, metrics)
	require.Len(t, report.Results, 4)
	assert.Equal(t, cgraph.QueryShortestPaths, report.Results[0].Query)
	assert.Equal(t, 3, report.Results[0].Runs)
	assert.Equal(t, int64(3), report.Results[0].Settled)
	assert.Equal(t, 1, report.Results[3].Runs)
	assert.Equal(t, "CompiledGraph(nodes=3, edges=2)", report.Graph)

	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, report))
	assert.Contains(t, buf.String(), "compile:")
}

func TestBreakEven(t *testing.T) {
	assert.Equal(t, 10, breakEven(100, benchResult{Runs: 1, Compiled: 5, Baseline: 15}))
	assert.Equal(t, -1, breakEven(100, benchResult{Runs: 1, Compiled: 15, Baseline: 5}))
	assert.Equal(t, -1, breakEven(100, benchResult{}))
}

func TestConvert(t *testing.T) {
	path := writeGraph(t, testGraph)
	out := filepath.Join(t.TempDir(), "graph.yaml.zst")

	stdout, _, err := runCmd(t, "-f", path, "convert", out)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+out+" (zstd, 4 edges)\n", stdout)

	stdout, _, err = runCmd(t, "-f", out, "sssp", "A")
	require.NoError(t, err)
	assert.Equal(t, "A\t0\nB\t1\nD\t3\nC\t4\n", stdout)
}
