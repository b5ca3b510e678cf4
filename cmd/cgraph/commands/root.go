package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/cgraph"
	"github.com/hupe1980/cgraph/internal/graphfile"
)

var (
	// Global flags
	graphFile     string
	verbose       bool
	jsonLogs      bool
	defaultWeight float64
)

var errNoGraphFile = errors.New("no graph document given, use --file")

var rootCmd = &cobra.Command{
	Use:   "cgraph",
	Short: "Query compiled graphs",
	Long: `cgraph - compile a graph document once and run queries against it.

A graph document is YAML (or JSON) listing edges and, optionally, nodes:

  directed: false
  nodes: [A, B, C]
  edges:
    - {from: A, to: B, weight: 1}
    - {from: B, to: C}

Examples:
  # Distances from A
  cgraph -f graph.yaml sssp A

  # Shortest path between two nodes
  cgraph -f graph.yaml path A C

  # Compare compiled queries with the uncompiled baseline
  cgraph -f graph.yaml bench --queries 100`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&graphFile, "file", "f", "", "graph document (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "log in JSON format")
	rootCmd.PersistentFlags().Float64Var(&defaultWeight, "default-weight", cgraph.DefaultWeight, "weight of edges without one")
}

// newLogger returns the logger selected by the global flags. Logs go to the
// command's error stream so query output stays clean.
func newLogger(cmd *cobra.Command) *cgraph.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if jsonLogs {
		return cgraph.NewLogger(slog.NewJSONHandler(cmd.ErrOrStderr(), opts))
	}
	return cgraph.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
}

// loadSource reads the document named by --file.
func loadSource() (*cgraph.MapGraph[string], error) {
	if graphFile == "" {
		return nil, errNoGraphFile
	}
	src, err := graphfile.Load(graphFile)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	return src, nil
}

// compileSource compiles src with the options selected by the global flags.
func compileSource(cmd *cobra.Command, src *cgraph.MapGraph[string], opts ...cgraph.Option) (*cgraph.Graph[string], error) {
	opts = append([]cgraph.Option{
		cgraph.WithLogger(newLogger(cmd)),
		cgraph.WithDefaultWeight(defaultWeight),
	}, opts...)

	g, err := cgraph.Compile[string](src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile graph: %w", err)
	}
	return g, nil
}

// loadGraph reads and compiles the document named by --file.
func loadGraph(cmd *cobra.Command) (*cgraph.Graph[string], error) {
	src, err := loadSource()
	if err != nil {
		return nil, err
	}
	return compileSource(cmd, src)
}
