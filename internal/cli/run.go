package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/morphlab/morph/internal/tool"
	"github.com/morphlab/morph/internal/tool/calc"
	"github.com/morphlab/morph/internal/tool/transform"
	"github.com/morphlab/morph/internal/tool/wordcount"
)

// registry holds the built-in tools, keyed by name.
var registry = mustRegistry()

func mustRegistry() *tool.Registry {
	r := tool.NewRegistry()

	register := func(runner tool.Runner, err error) {
		if err == nil {
			err = r.Register(runner)
		}
		if err != nil {
			panic(fmt.Sprintf("registering built-in tools: %v", err))
		}
	}

	register(transform.New())
	register(wordcount.New())
	register(calc.New())

	return r
}

// runTool resolves a tool by name, feeds it the raw JSON argument and
// prints the compact JSON result as a single line on stdout. Errors are
// returned to cobra so they land on stderr with a nonzero exit.
func runTool(cmd *cobra.Command, name, rawInput string) error {
	runner, err := registry.Get(name)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := runner.Run(json.RawMessage(rawInput))
	if err != nil {
		return err
	}

	log.Debug().
		Str("tool", name).
		Dur("duration", time.Since(start)).
		Msg("Tool completed")

	out, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding %s result: %w", name, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}
