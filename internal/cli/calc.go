package cli

import (
	"github.com/spf13/cobra"

	"github.com/morphlab/morph/internal/tool/calc"
)

// calcCmd represents the calc command
var calcCmd = &cobra.Command{
	Use:   "calc <json>",
	Short: "Evaluate a basic arithmetic operation",
	Long: `Evaluate a basic arithmetic operation on two numbers.

The input document requires three fields: a, b and operation. Supported
operations are add, subtract, multiply and divide. Division by zero and
results that overflow the float range are reported as errors.

Examples:
  morph calc '{"a":2,"b":3,"operation":"add"}'       # {"result":5}
  morph calc '{"a":10,"b":4,"operation":"divide"}'   # {"result":2.5}`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, calc.Name, args[0])
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
}
