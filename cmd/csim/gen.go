package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ludo-technologies/csim/domain"
	"github.com/ludo-technologies/csim/internal/generator"
	"github.com/ludo-technologies/csim/service"
)

// GenCommand handles the stress fixture generation command
type GenCommand struct {
	functions  int
	mainCalls  int
	variant    bool
	seed       int64
	outputPath string
	noProgress bool
}

// NewGenCommand creates a new gen command with defaults
func NewGenCommand() *GenCommand {
	return &GenCommand{
		functions:  domain.DefaultGeneratorFunctions,
		mainCalls:  domain.DefaultGeneratorMainCalls,
		seed:       domain.DefaultGeneratorSeed,
		outputPath: domain.DefaultGeneratorOutputPath,
	}
}

// CreateCobraCommand creates the cobra command for fixture generation
func (g *GenCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic stress fixture",
		Long: `Generate a large synthetic source file for exercising the comparator.

The fixture contains many templated functions with nested control flow and
a main that calls a subset of them. With --variant, every identifier is
renamed and every literal changed while the structure stays identical, so
a base/variant pair should score a similarity of 1.0.

Examples:
  # Generate the default 5000-function fixture
  csim gen

  # Generate a matching structural variant
  csim gen --variant -o stress_variant.c

  # Smaller fixture for quick runs
  csim gen --functions 200 --main-calls 20 -o small.c`,
		Args: cobra.NoArgs,
		RunE: g.runGen,
	}

	cmd.Flags().IntVarP(&g.functions, "functions", "n", g.functions, "Number of templated functions to emit")
	cmd.Flags().IntVar(&g.mainCalls, "main-calls", g.mainCalls, "Number of generated functions main invokes")
	cmd.Flags().BoolVar(&g.variant, "variant", g.variant, "Rename identifiers and change literals, keeping structure")
	cmd.Flags().Int64Var(&g.seed, "seed", g.seed, "Seed for variant literal values")
	cmd.Flags().StringVarP(&g.outputPath, "output", "o", g.outputPath, "Output file path")
	cmd.Flags().BoolVar(&g.noProgress, "no-progress", g.noProgress, "Disable the progress bar")

	return cmd
}

// runGen executes the gen command
func (g *GenCommand) runGen(cmd *cobra.Command, args []string) error {
	if g.functions < 1 {
		return fmt.Errorf("--functions must be at least 1, got %d", g.functions)
	}
	if g.mainCalls < 0 {
		return fmt.Errorf("--main-calls must not be negative, got %d", g.mainCalls)
	}

	gen := generator.New(generator.Options{
		Functions: g.functions,
		MainCalls: g.mainCalls,
		Variant:   g.variant,
		Seed:      g.seed,
	})

	progress := g.progressCallback(cmd)
	if err := gen.WriteFile(g.outputPath, progress); err != nil {
		return fmt.Errorf("failed to generate fixture: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Fixture written: %s (%d functions)\n", g.outputPath, g.functions)
	return nil
}

// progressCallback builds a progressbar-backed callback, or nil when the
// bar is disabled or the session is non-interactive.
func (g *GenCommand) progressCallback(cmd *cobra.Command) func(written, total int) {
	if g.noProgress || !service.IsInteractiveEnvironment() {
		return nil
	}

	bar := progressbar.NewOptions(g.functions,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("Generating functions"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(30),
	)
	return func(written, total int) {
		_ = bar.Set(written)
		if written >= total {
			_ = bar.Finish()
		}
	}
}

// NewGenCmd creates and returns the gen cobra command
func NewGenCmd() *cobra.Command {
	genCommand := NewGenCommand()
	return genCommand.CreateCobraCommand()
}
