package repositories

import (
	"io"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
)

// ProjectWriterRepository serializes a resolved project for the external builder.
type ProjectWriterRepository interface {
	// Name returns the output format identifier (e.g. "yaml", "json").
	Name() string

	// Write emits the project to w.
	Write(w io.Writer, project *entities.Project) error
}
