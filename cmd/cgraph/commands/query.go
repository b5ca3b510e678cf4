package commands

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/cgraph"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show node, edge and component counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, g)
		fmt.Fprintf(out, "  nodes:      %d\n", g.NodeCount())
		fmt.Fprintf(out, "  edges:      %d\n", g.EdgeCount())
		fmt.Fprintf(out, "  directed:   %t\n", g.Directed())
		fmt.Fprintf(out, "  components: %d\n", g.ComponentCount())
		return nil
	},
}

var ssspCmd = &cobra.Command{
	Use:   "sssp <source>",
	Short: "Distances from source to every reachable node",
	Long: `Print the shortest path distance from source to every reachable node,
nearest first. Unreachable nodes are omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(cmd)
		if err != nil {
			return err
		}
		if err := requireNode(g, args[0]); err != nil {
			return err
		}

		dist := g.ShortestPaths(args[0])
		ids := make([]string, 0, len(dist))
		for id := range dist {
			ids = append(ids, id)
		}
		slices.SortFunc(ids, func(a, b string) int {
			if c := cmp.Compare(dist[a], dist[b]); c != 0 {
				return c
			}
			return strings.Compare(a, b)
		})

		out := cmd.OutOrStdout()
		for _, id := range ids {
			fmt.Fprintf(out, "%s\t%g\n", id, dist[id])
		}
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path <source> <target>",
	Short: "Shortest path between two nodes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(cmd)
		if err != nil {
			return err
		}
		for _, id := range args {
			if err := requireNode(g, id); err != nil {
				return err
			}
		}

		p, ok := g.ShortestPath(args[0], args[1])
		if !ok {
			return fmt.Errorf("no path from %q to %q", args[0], args[1])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "distance: %g\n", p.Distance)
		fmt.Fprintf(out, "path:     %s\n", strings.Join(p.Nodes, " -> "))
		return nil
	},
}

var bfsCmd = &cobra.Command{
	Use:   "bfs <source>",
	Short: "Breadth-first order from source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTraversal(cmd, args[0], (*cgraph.Graph[string]).BFS)
	},
}

var dfsCmd = &cobra.Command{
	Use:   "dfs <source>",
	Short: "Depth-first preorder from source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTraversal(cmd, args[0], (*cgraph.Graph[string]).DFS)
	},
}

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "Connected components, one per line",
	Long: `Print every connected component on its own line. Edge direction is
ignored, so directed graphs report weakly connected components.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, c := range g.Components() {
			fmt.Fprintln(out, strings.Join(c, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(ssspCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(bfsCmd)
	rootCmd.AddCommand(dfsCmd)
	rootCmd.AddCommand(componentsCmd)
}

func runTraversal(cmd *cobra.Command, source string, traverse func(*cgraph.Graph[string], string) []string) error {
	g, err := loadGraph(cmd)
	if err != nil {
		return err
	}
	if err := requireNode(g, source); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(traverse(g, source), " "))
	return nil
}

func requireNode(g *cgraph.Graph[string], id string) error {
	if !g.Contains(id) {
		return fmt.Errorf("unknown node %q", id)
	}
	return nil
}
