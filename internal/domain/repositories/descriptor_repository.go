package repositories

import (
	"context"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
)

// DescriptorRepository locates and reads the UI framework descriptor.
type DescriptorRepository interface {
	// Locate returns the descriptor path to use for a document, or "" when
	// none can be found.
	Locate(documentPath string) string

	// Load reads the descriptor at path.
	Load(ctx context.Context, path string) (*entities.ExternalDescriptor, error)
}
