package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	"github.com/rios0rios0/buildcfg/internal/domain/repositories"
)

const yamlIndent = 2

// YAMLProjectWriterRepository emits the resolved project as YAML.
type YAMLProjectWriterRepository struct{}

// NewYAMLProjectWriterRepository creates a new YAML writer.
func NewYAMLProjectWriterRepository() repositories.ProjectWriterRepository {
	return &YAMLProjectWriterRepository{}
}

func (w *YAMLProjectWriterRepository) Name() string { return entities.OutputFormatYAML }

func (w *YAMLProjectWriterRepository) Write(out io.Writer, project *entities.Project) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(project); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
