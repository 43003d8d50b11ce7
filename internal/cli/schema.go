package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morphlab/morph/internal/schema"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema [tool]",
	Short: "Print tool input schemas",
	Long: `Print the JSON Schema describing a tool's input document.

Without an argument the schemas of every registered tool are printed as a
single object keyed by tool name.

Examples:
  morph schema transform   # Schema for one tool
  morph schema             # Schemas for every tool`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSchema(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func printSchema(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		runner, err := registry.Get(args[0])
		if err != nil {
			return err
		}
		return writeIndented(cmd, runner.Descriptor().Parameters)
	}

	schemas := make(map[string]schema.JSON)
	for _, d := range registry.List() {
		schemas[d.Name] = d.Parameters
	}

	return writeIndented(cmd, schemas)
}

func writeIndented(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schema: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}
