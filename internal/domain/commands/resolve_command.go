package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	"github.com/rios0rios0/buildcfg/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/buildcfg/internal/infrastructure/repositories"
)

// Resolve is the interface for the resolve command.
type Resolve interface {
	Execute(ctx context.Context, opts ResolveOptions) (*entities.Project, error)
}

// ResolveOptions holds runtime options for a single resolution.
type ResolveOptions struct {
	DocumentPath     string
	Format           string            // If set, skip format detection
	DescriptorPath   string            // If set, skip descriptor discovery
	DescriptorValues map[string]string // Override descriptor file values
	Exclusions       []entities.DependencyExclusion
	Verbose          bool
}

// ResolveCommand runs the linear pipeline:
// load -> resolve defaults -> apply exclusions -> validate.
type ResolveCommand struct {
	documentRegistry *infraRepos.DocumentRegistry
	descriptors      repositories.DescriptorRepository
}

// NewResolveCommand creates a new ResolveCommand.
func NewResolveCommand(
	documentRegistry *infraRepos.DocumentRegistry,
	descriptors repositories.DescriptorRepository,
) *ResolveCommand {
	return &ResolveCommand{
		documentRegistry: documentRegistry,
		descriptors:      descriptors,
	}
}

// Execute loads the document and returns the normalized project, or the
// first ParseError, ResolutionError or ValidationError encountered.
func (it *ResolveCommand) Execute(ctx context.Context, opts ResolveOptions) (*entities.Project, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	document, err := it.documentRegistry.Resolve(opts.Format, opts.DocumentPath)
	if err != nil {
		return nil, err
	}
	logger.Infof("[%s] Loading %s", document.Name(), opts.DocumentPath)

	project, err := document.Load(ctx, opts.DocumentPath)
	if err != nil {
		return nil, err
	}

	descriptor, err := it.loadDescriptor(ctx, opts)
	if err != nil {
		return nil, err
	}

	config, err := entities.ResolveDefaults(project.Config, descriptor)
	if err != nil {
		return nil, err
	}

	resolved := *project
	resolved.Config = config
	resolved.Exclusions = mergeExclusions(project.Exclusions, opts.Exclusions)
	resolved.Dependencies = entities.NormalizeDependencies(
		entities.ApplyExclusions(project.Dependencies, resolved.Exclusions),
	)
	if removed := len(project.Dependencies) - len(resolved.Dependencies); removed > 0 {
		logger.Debugf("Dropped %d dependencies through exclusions and de-duplication", removed)
	}

	if validateErr := entities.ValidateProject(&resolved); validateErr != nil {
		return nil, validateErr
	}

	logger.Infof(
		"Resolved %s: minSdk=%d targetSdk=%d compileSdk=%d, %d dependencies",
		config.ApplicationID, config.MinSdk, config.TargetSdk, config.CompileSdk, len(resolved.Dependencies),
	)
	return &resolved, nil
}

// loadDescriptor returns the framework descriptor or nil when none exists.
func (it *ResolveCommand) loadDescriptor(
	ctx context.Context,
	opts ResolveOptions,
) (*entities.ExternalDescriptor, error) {
	path := opts.DescriptorPath
	if path == "" {
		path = it.descriptors.Locate(opts.DocumentPath)
	}

	var descriptor *entities.ExternalDescriptor
	if path != "" {
		loaded, err := it.descriptors.Load(ctx, path)
		if err != nil {
			return nil, &entities.ResolutionError{Field: "descriptor", Key: path, Reason: err.Error()}
		}
		logger.Infof("Using descriptor: %s", path)
		descriptor = loaded
	} else {
		logger.Debug("No external descriptor found")
	}

	return descriptor.Overlay("settings", opts.DescriptorValues), nil
}

// mergeExclusions appends extra to base without duplicates, in a new slice.
func mergeExclusions(base, extra []entities.DependencyExclusion) []entities.DependencyExclusion {
	merged := make([]entities.DependencyExclusion, 0, len(base)+len(extra))
	seen := make(map[entities.DependencyExclusion]bool, len(base)+len(extra))
	for _, list := range [][]entities.DependencyExclusion{base, extra} {
		for _, exclusion := range list {
			if seen[exclusion] {
				continue
			}
			seen[exclusion] = true
			merged = append(merged, exclusion)
		}
	}
	return merged
}
