package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/buildcfg/internal/domain/repositories"
	gradleRepo "github.com/rios0rios0/buildcfg/internal/infrastructure/repositories/gradle"
	hclRepo "github.com/rios0rios0/buildcfg/internal/infrastructure/repositories/hcldoc"
	outputRepo "github.com/rios0rios0/buildcfg/internal/infrastructure/repositories/output"
	propsRepo "github.com/rios0rios0/buildcfg/internal/infrastructure/repositories/properties"
	yamlRepo "github.com/rios0rios0/buildcfg/internal/infrastructure/repositories/yamldoc"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register document registry with all supported formats
	if err := container.Provide(func() *DocumentRegistry {
		reg := NewDocumentRegistry()
		reg.Register(gradleRepo.NewGradleDocumentRepository())
		reg.Register(yamlRepo.NewYAMLDocumentRepository())
		reg.Register(hclRepo.NewHCLDocumentRepository())
		return reg
	}); err != nil {
		return err
	}

	// Register writer registry with all output formats
	if err := container.Provide(func() *WriterRegistry {
		reg := NewWriterRegistry()
		reg.Register(outputRepo.NewYAMLProjectWriterRepository())
		reg.Register(outputRepo.NewJSONProjectWriterRepository())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.DescriptorRepository {
		return propsRepo.NewPropertiesDescriptorRepository()
	}); err != nil {
		return err
	}

	return nil
}
