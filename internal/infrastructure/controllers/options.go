package controllers

import (
	"errors"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/buildcfg/internal/domain/commands"
	"github.com/rios0rios0/buildcfg/internal/domain/entities"
)

// ErrNoDocument is returned when neither the arguments nor the settings name a document.
var ErrNoDocument = errors.New("no build document given; pass a path or set 'document' in the config file")

// loadSettings reads the settings file named by --config, or the first one
// found in the default locations. A missing default file is not an error.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfgPath := configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file in default locations: %v", err)
			return &entities.Settings{}, nil
		}
	}

	logger.Infof("Using config file: %s", cfgPath)
	return entities.NewSettings(cfgPath)
}

// resolveOptions merges CLI flags over settings into command options.
func resolveOptions(
	cmd *cobra.Command,
	args []string,
	settings *entities.Settings,
) (commands.ResolveOptions, error) {
	format, _ := cmd.Flags().GetString("format")
	descriptorPath, _ := cmd.Flags().GetString("descriptor")
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := commands.ResolveOptions{
		DocumentPath:     settings.Document,
		Format:           settings.Format,
		DescriptorPath:   settings.Descriptor.Path,
		DescriptorValues: settings.Descriptor.Values,
		Exclusions:       settings.Exclusions,
		Verbose:          verbose,
	}
	if len(args) > 0 {
		opts.DocumentPath = args[0]
	}
	if format != "" {
		opts.Format = format
	}
	if descriptorPath != "" {
		opts.DescriptorPath = descriptorPath
	}

	if opts.DocumentPath == "" {
		return opts, ErrNoDocument
	}
	return opts, nil
}
