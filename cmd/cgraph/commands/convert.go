package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/cgraph/internal/graphfile"
)

var convertCmd = &cobra.Command{
	Use:   "convert <output>",
	Short: "Rewrite the graph document, optionally compressed",
	Long: `Read the document given by --file and write it to output. The output
compression follows its extension: .zst, .lz4, .gz or none.

Examples:
  cgraph -f graph.yaml convert graph.yaml.zst
  cgraph -f graph.yaml.zst convert graph.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if graphFile == "" {
			return errNoGraphFile
		}
		doc, err := graphfile.ReadFile(graphFile)
		if err != nil {
			return fmt.Errorf("load graph: %w", err)
		}
		if _, err := doc.Graph(); err != nil {
			return fmt.Errorf("load graph: %w", err)
		}

		if err := graphfile.WriteFile(args[0], doc); err != nil {
			return fmt.Errorf("write graph: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %d edges)\n",
			args[0], graphfile.CompressionFor(args[0]), len(doc.Edges))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
