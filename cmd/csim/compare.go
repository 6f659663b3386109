package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/csim/app"
	"github.com/ludo-technologies/csim/domain"
	"github.com/ludo-technologies/csim/service"
)

// CompareCommand handles the pairwise comparison CLI command
type CompareCommand struct {
	// Configuration
	configFile string

	// Output format flags (at most one should be true)
	format string
	json   bool
	csv    bool
	yaml   bool

	// Output options
	outputPath  string
	showDetails bool
	noProgress  bool

	// Gate
	failAbove float64

	verbose bool
}

// NewCompareCommand creates a new compare command with defaults
func NewCompareCommand() *CompareCommand {
	return &CompareCommand{
		failAbove: -1,
	}
}

// CreateCobraCommand creates the Cobra command for pairwise comparison
func (c *CompareCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <fileA> <fileB>",
		Short: "Score the structural similarity of two source files",
		Long: `Compare two source files and report their structural similarity.

Each argument is a file path or a glob pattern matching exactly one file.
The report includes the edit distance, the similarity ratio, and a verdict
band (highly similar / moderately similar / low similarity / dissimilar).

Examples:
  # Compare two submissions
  csim compare alice.c bob.c

  # Machine-readable report
  csim compare --json alice.c bob.c

  # Write the report to a file and show per-input statistics
  csim compare -d -o report.yaml --yaml alice.c bob.c

  # Fail CI when submissions are 90%+ similar
  csim compare --fail-above 0.9 alice.c bob.c`,
		Args: cobra.ExactArgs(2),
		RunE: c.runCompare,
	}

	cmd.Flags().StringVarP(&c.configFile, "config", "c", c.configFile,
		"Path to configuration file")

	cmd.Flags().StringVar(&c.format, "format", c.format,
		"Output format: text, json, yaml, csv")
	cmd.Flags().BoolVar(&c.json, "json", false, "Output as JSON (same as --format json)")
	cmd.Flags().BoolVar(&c.csv, "csv", false, "Output as CSV (same as --format csv)")
	cmd.Flags().BoolVar(&c.yaml, "yaml", false, "Output as YAML (same as --format yaml)")

	cmd.Flags().StringVarP(&c.outputPath, "output", "o", c.outputPath,
		"Write the report to a file instead of stdout")
	cmd.Flags().BoolVarP(&c.showDetails, "details", "d", c.showDetails,
		"Show per-input token and sequence statistics")
	cmd.Flags().BoolVar(&c.noProgress, "no-progress", c.noProgress,
		"Disable the progress bar")

	cmd.Flags().Float64Var(&c.failAbove, "fail-above", c.failAbove,
		"Exit with code 2 when similarity reaches this ratio (0.0-1.0)")

	cmd.Flags().BoolVarP(&c.verbose, "verbose", "v", c.verbose,
		"Enable verbose output")

	return cmd
}

// runCompare executes the compare command
func (c *CompareCommand) runCompare(cmd *cobra.Command, args []string) error {
	request, err := c.createCompareRequest(cmd, args)
	if err != nil {
		return err
	}

	useCase, err := c.createCompareUseCase(cmd, request)
	if err != nil {
		return fmt.Errorf("failed to create compare use case: %w", err)
	}

	_, err = useCase.Execute(context.Background(), *request)
	if err != nil {
		c.printSuggestions(cmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

// createCompareRequest builds the request: config file values first, then
// explicit CLI flags on top.
func (c *CompareCommand) createCompareRequest(cmd *cobra.Command, args []string) (*domain.CompareRequest, error) {
	// Config discovery happens here (walking up from the working
	// directory) so the use case does not need to reload it.
	configLoader := service.NewCompareConfigurationLoader()
	request, err := configLoader.LoadCompareConfig(c.configFile)
	if err != nil {
		return nil, err
	}

	request.InputA = args[0]
	request.InputB = args[1]
	request.NoProgress = c.noProgress

	explicit := explicitFlags(cmd)

	outputFormat, extension, err := c.determineOutputFormat(cmd, request.OutputFormat)
	if err != nil {
		return nil, err
	}
	request.OutputFormat = outputFormat

	if explicit["details"] {
		request.ShowDetails = c.showDetails
	}
	if explicit["fail-above"] {
		gate := c.failAbove
		request.FailAbove = &gate
	}

	// Text reports default to stdout; other formats generate a report
	// file unless --output names one.
	request.OutputPath = c.outputPath
	if request.OutputPath == "" && outputFormat != domain.OutputFormatText {
		request.OutputPath, err = generateOutputFilePath("compare", extension, c.configFile)
		if err != nil {
			return nil, err
		}
	}
	request.OutputWriter = cmd.OutOrStdout()

	return request, nil
}

// determineOutputFormat resolves the shorthand bool flags and --format,
// falling back to the configured format.
func (c *CompareCommand) determineOutputFormat(cmd *cobra.Command, configured domain.OutputFormat) (domain.OutputFormat, string, error) {
	format, extension, err := service.NewOutputFormatResolver().Determine(c.json, c.csv, c.yaml)
	if err != nil {
		return "", "", err
	}

	if cmd.Flags().Changed("format") {
		if format != domain.OutputFormatText {
			return "", "", fmt.Errorf("--format cannot be combined with a format shorthand flag")
		}
		format = domain.OutputFormat(strings.ToLower(c.format))
		if !format.IsValid() {
			return "", "", domain.NewUnsupportedFormatError(c.format)
		}
		return format, string(format), nil
	}

	if format == domain.OutputFormatText && configured != "" && !cmd.Flags().Changed("format") &&
		!c.json && !c.csv && !c.yaml {
		format = configured
		if format != domain.OutputFormatText {
			extension = string(format)
		}
	}
	return format, extension, nil
}

// createCompareUseCase wires the services behind the use case
func (c *CompareCommand) createCompareUseCase(cmd *cobra.Command, request *domain.CompareRequest) (*app.CompareUseCase, error) {
	var progress domain.ProgressReporter
	if request.NoProgress || request.OutputFormat != domain.OutputFormatText {
		progress = service.NewSilentProgressManager()
	} else {
		progress = service.NewProgressManager()
	}

	fileReader := service.NewFileReader()
	compareService := service.NewCompareService(fileReader, progress)
	formatter := service.NewCompareFormatterWithOptions(request.ShowDetails, c.colorEnabled(cmd, request))
	configLoader := service.NewCompareConfigurationLoader()

	return app.NewCompareUseCaseBuilder().
		WithService(compareService).
		WithFormatter(formatter).
		WithConfigLoader(configLoader).
		WithOutputWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		Build()
}

// colorEnabled reports whether the text report should carry ANSI colors:
// text format, stdout is a terminal, and --no-color was not given.
func (c *CompareCommand) colorEnabled(cmd *cobra.Command, request *domain.CompareRequest) bool {
	if request.OutputFormat != domain.OutputFormatText || request.OutputPath != "" {
		return false
	}
	if noColor, err := cmd.Flags().GetBool("no-color"); err == nil && noColor {
		return false
	}
	return service.IsInteractiveEnvironment()
}

// printSuggestions prints recovery hints for the failure to stderr. The
// gate error is intentional and needs none.
func (c *CompareCommand) printSuggestions(w io.Writer, err error) {
	categorizer := service.NewErrorCategorizer()
	categorized := categorizer.Categorize(err)
	if categorized == nil || categorized.Category == domain.ErrorCategoryGate {
		return
	}

	fmt.Fprintf(w, "%s\n", categorized.Message)
	if c.verbose {
		for _, suggestion := range categorizer.GetRecoverySuggestions(categorized.Category) {
			fmt.Fprintf(w, "  - %s\n", suggestion)
		}
	}
}

// NewCompareCmd creates and returns the compare cobra command
func NewCompareCmd() *cobra.Command {
	compareCommand := NewCompareCommand()
	return compareCommand.CreateCobraCommand()
}
