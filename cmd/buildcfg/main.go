package main

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/buildcfg/internal"
	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	"github.com/rios0rios0/buildcfg/internal/infrastructure/controllers"
)

func buildRootCommand(resolveController *controllers.ResolveController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "buildcfg [document]",
		Short: "Resolve and validate Android application build configuration",
		Long: `Reads the declarative build configuration of an Android application
(build.gradle.kts, YAML or HCL), fills SDK levels and version fields from
the UI framework descriptor (local.properties), validates the result and
emits a normalized configuration for the native builder.

Usage modes:
  buildcfg android/app/build.gradle.kts   Resolve and print the configuration
  buildcfg                                Resolve the document named in the config file
  buildcfg validate build.yaml            Only check, exit non-zero on errors`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(command *cobra.Command, args []string) error {
			err := resolveController.Execute(command, args)
			if errors.Is(err, controllers.ErrNoDocument) {
				return command.Help()
			}
			return err
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("descriptor", "d", "",
		"Path to the framework descriptor (default: local.properties near the document)")
	cmd.PersistentFlags().StringP("format", "f", "",
		"Document format: gradle, yaml or hcl (default: detect from file name)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	resolveController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if rc, ok := ctrl.(*controllers.ResolveController); ok {
			rc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	resolveController := injectResolveController()
	cobraRoot := buildRootCommand(resolveController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Errorf("Error executing 'buildcfg': %s", err)
		os.Exit(entities.ExitCode(err))
	}
}
