package repositories

import (
	"context"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
)

// DocumentRepository abstracts a declarative build-document format (Gradle
// Kotlin DSL, YAML, HCL). Each implementation owns parsing its syntax into
// the common project model.
type DocumentRepository interface {
	// Name returns the format identifier (e.g. "gradle", "yaml").
	Name() string

	// Detect returns true if the file at path looks like this format.
	Detect(path string) bool

	// Load parses the document. Malformed content and missing required keys
	// are reported as *entities.ParseError.
	Load(ctx context.Context, path string) (*entities.Project, error)
}
