package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ludo-technologies/csim/internal/config"
)

// explicitFlags reports, by name, the flags the user set on the command
// line. Needed to tell an explicit zero value apart from an untouched
// default when merging flags over config file values.
func explicitFlags(cmd *cobra.Command) map[string]bool {
	set := make(map[string]bool)
	if cmd != nil {
		cmd.Flags().Visit(func(f *pflag.Flag) {
			set[f.Name] = true
		})
	}
	return set
}

// generateTimestampedFileName generates a filename with timestamp suffix
func generateTimestampedFileName(command, extension string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s.%s", command, timestamp, extension)
}

// resolveOutputDirectory determines the output directory from configuration.
// Returns directory path and any error encountered during config loading.
func resolveOutputDirectory(configPath string) (string, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		// Don't hide configuration errors - they should be visible to users
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg != nil && cfg.Output.Directory != "" {
		return cfg.Output.Directory, nil
	}

	// Default output directory when not specified in config.
	// Use a tool-specific hidden directory under the current working
	// directory so reports never land next to the compared sources.
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Join(".csim", "reports"), nil
	}
	return filepath.Join(cwd, ".csim", "reports"), nil
}

// generateOutputFilePath combines filename generation and directory
// resolution, creating the directory when needed.
func generateOutputFilePath(command, extension, configPath string) (string, error) {
	filename := generateTimestampedFileName(command, extension)
	outputDir, err := resolveOutputDirectory(configPath)
	if err != nil {
		return "", err
	}

	if mkErr := os.MkdirAll(outputDir, 0o755); mkErr != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, mkErr)
	}
	return filepath.Join(outputDir, filename), nil
}
