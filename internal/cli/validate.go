package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/morphlab/morph/internal/schema"
	"github.com/morphlab/morph/internal/style"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <tool> <json>...",
	Short: "Validate inputs against a tool's schema",
	Long: `Validate JSON input documents against a tool's input schema without
running the tool.

Each argument after the tool name is validated independently, so a whole
batch of inputs can be checked in one invocation.

Examples:
  morph validate transform '{"text":"hi"}'                  # Single input
  morph validate calc '{"a":1}' '{"a":1,"b":2}'             # Batch
  morph validate transform --output json '{"operation":1}'  # JSON summary for CI`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateInputs(cmd, args[0], args[1:])
	},
}

var showAll bool

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&showAll, "show-all", false, "show all validation results, including successful ones")
}

// InputResult represents the result of validating a single input document
type InputResult struct {
	Input    string        `json:"input" yaml:"input"`
	Valid    bool          `json:"valid" yaml:"valid"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Errors   []string      `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// ValidationSummary represents the summary of all validation results
type ValidationSummary struct {
	Tool     string        `json:"tool" yaml:"tool"`
	Total    int           `json:"total" yaml:"total"`
	Valid    int           `json:"valid" yaml:"valid"`
	Invalid  int           `json:"invalid" yaml:"invalid"`
	Duration time.Duration `json:"total_duration" yaml:"total_duration"`
	Results  []InputResult `json:"results" yaml:"results"`
}

func validateInputs(cmd *cobra.Command, name string, inputs []string) error {
	start := time.Now()

	runner, err := registry.Get(name)
	if err != nil {
		return err
	}

	validator, err := schema.NewValidator(runner.Descriptor().Parameters)
	if err != nil {
		return fmt.Errorf("compiling %s schema: %w", name, err)
	}

	// Validate each input
	results := make([]InputResult, 0, len(inputs))

	for _, input := range inputs {
		result := validateSingleInput(validator, input)
		results = append(results, result)

		// Show progress if not quiet and not JSON/YAML output
		if !viper.GetBool("quiet") && viper.GetString("output") == "text" {
			if result.Valid {
				if showAll {
					style.Success(cmd.ErrOrStderr(), fmt.Sprintf("%s (%v)", input, result.Duration))
				}
			} else {
				style.Error(cmd.ErrOrStderr(), fmt.Sprintf("%s (%v)", input, result.Duration))
				for _, msg := range result.Errors {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", msg)
				}
			}
		}
	}

	// Create summary
	summary := ValidationSummary{
		Tool:     name,
		Total:    len(results),
		Duration: time.Since(start),
		Results:  results,
	}

	for _, result := range results {
		if result.Valid {
			summary.Valid++
		} else {
			summary.Invalid++
		}
	}

	// Output results
	switch viper.GetString("output") {
	case "json":
		if err := printJSON(cmd.OutOrStdout(), summary); err != nil {
			return err
		}
	case "yaml":
		if err := printYAML(cmd.OutOrStdout(), summary); err != nil {
			return err
		}
	default:
		printValidationSummary(cmd, summary)
	}

	if summary.Invalid > 0 {
		return fmt.Errorf("%d of %d input(s) failed validation", summary.Invalid, summary.Total)
	}

	return nil
}

func validateSingleInput(validator *schema.Validator, input string) InputResult {
	start := time.Now()
	result := InputResult{
		Input: input,
		Valid: true,
	}

	validation := validator.ValidateBytes([]byte(input))
	result.Duration = time.Since(start)

	if !validation.Valid {
		result.Valid = false
		for _, verr := range validation.Errors {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", verr.Path, verr.Message))
		}
	}

	log.Debug().
		Bool("valid", result.Valid).
		Dur("duration", result.Duration).
		Msg("Validated input")

	return result
}

func printValidationSummary(cmd *cobra.Command, summary ValidationSummary) {
	if viper.GetBool("quiet") {
		return
	}

	// Status reporting stays on stderr so stdout remains machine-readable.
	w := cmd.ErrOrStderr()

	fmt.Fprintf(w, "\n")
	if summary.Invalid == 0 {
		style.Success(w, fmt.Sprintf("All %d input(s) are valid for %s (%v)", summary.Total, summary.Tool, summary.Duration))
	} else {
		style.Error(w, fmt.Sprintf("%d of %d input(s) failed validation (%v)", summary.Invalid, summary.Total, summary.Duration))
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(w, "\nDetailed results:\n")
		headers := []string{"Input", "Status", "Duration"}
		rows := make([][]string, len(summary.Results))

		for i, result := range summary.Results {
			status := style.SuccessString("valid")
			if !result.Valid {
				status = style.ErrorString("invalid")
			}
			rows[i] = []string{
				result.Input,
				status,
				result.Duration.String(),
			}
		}

		printTable(w, headers, rows)
	}
}
