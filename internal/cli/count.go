package cli

import (
	"github.com/spf13/cobra"

	"github.com/morphlab/morph/internal/tool/wordcount"
)

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count <json>",
	Short: "Count whitespace-separated words",
	Long: `Count the whitespace-separated words in a text.

The input document accepts one optional field, text. A missing text
defaults to the empty string, which counts zero words.

Examples:
  morph count '{"text":"one two three"}'   # {"count":3}
  morph count '{}'                         # {"count":0}`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, wordcount.Name, args[0])
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
