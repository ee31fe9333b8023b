package controllers

import (
	"context"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/buildcfg/internal/domain/commands"
	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	infraRepos "github.com/rios0rios0/buildcfg/internal/infrastructure/repositories"
)

const outputFileMode = 0o644

// ResolveController handles the "resolve" subcommand and the bare root command.
type ResolveController struct {
	command        commands.Resolve
	writerRegistry *infraRepos.WriterRegistry
}

// NewResolveController creates a new ResolveController.
func NewResolveController(
	command commands.Resolve,
	writerRegistry *infraRepos.WriterRegistry,
) *ResolveController {
	return &ResolveController{command: command, writerRegistry: writerRegistry}
}

// GetBind returns the Cobra command metadata for the resolve controller.
func (it *ResolveController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "resolve [document]",
		Short: "Resolve and emit the normalized build configuration",
		Long: `Load a build document, fill SDK levels and version fields from the
framework descriptor, apply dependency exclusions, validate the result,
and write the normalized configuration for the native builder.`,
	}
}

// Execute runs the resolution and writes the result.
func (it *ResolveController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts, err := resolveOptions(cmd, args, settings)
	if err != nil {
		return err
	}

	project, err := it.command.Execute(ctx, opts)
	if err != nil {
		return err
	}

	outputFormat, _ := cmd.Flags().GetString("output-format")
	if outputFormat == "" {
		outputFormat = settings.Output.Format
	}
	if outputFormat == "" {
		outputFormat = entities.OutputFormatYAML
	}
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = settings.Output.Path
	}

	return it.emit(cmd.OutOrStdout(), outputFormat, outputPath, project)
}

// AddFlags adds the resolve-specific flags to the given Cobra command.
func (it *ResolveController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Write the normalized configuration to this file (default: stdout)")
	cmd.Flags().String("output-format", "",
		fmt.Sprintf("Output format (%v, default: %s)", it.writerRegistry.Names(), entities.OutputFormatYAML),
	)
}

func (it *ResolveController) emit(stdout io.Writer, format, path string, project *entities.Project) error {
	writer, err := it.writerRegistry.Get(format)
	if err != nil {
		return err
	}

	if path == "" || path == "-" {
		return writer.Write(stdout, project)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, outputFileMode)
	if err != nil {
		return fmt.Errorf("failed to open output %q: %w", path, err)
	}
	if writeErr := writer.Write(file, project); writeErr != nil {
		_ = file.Close()
		return writeErr
	}
	if closeErr := file.Close(); closeErr != nil {
		return fmt.Errorf("failed to close output %q: %w", path, closeErr)
	}

	logger.Infof("Wrote %s configuration to %s", format, path)
	return nil
}
