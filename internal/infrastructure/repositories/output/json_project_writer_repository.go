package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	"github.com/rios0rios0/buildcfg/internal/domain/repositories"
)

// JSONProjectWriterRepository emits the resolved project as indented JSON.
type JSONProjectWriterRepository struct{}

// NewJSONProjectWriterRepository creates a new JSON writer.
func NewJSONProjectWriterRepository() repositories.ProjectWriterRepository {
	return &JSONProjectWriterRepository{}
}

func (w *JSONProjectWriterRepository) Name() string { return entities.OutputFormatJSON }

func (w *JSONProjectWriterRepository) Write(out io.Writer, project *entities.Project) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(project); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
