//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	"github.com/rios0rios0/buildcfg/internal/domain/repositories"
)

// SpyDescriptorRepository implements repositories.DescriptorRepository as a configurable spy.
type SpyDescriptorRepository struct {
	// --- Locate ---
	LocatedPath    string
	LocateRequests []string

	// --- Load ---
	Values      map[string]string
	LoadErr     error
	LoadedPaths []string
}

var _ repositories.DescriptorRepository = (*SpyDescriptorRepository)(nil)

func (d *SpyDescriptorRepository) Locate(documentPath string) string {
	d.LocateRequests = append(d.LocateRequests, documentPath)
	return d.LocatedPath
}

func (d *SpyDescriptorRepository) Load(
	_ context.Context,
	path string,
) (*entities.ExternalDescriptor, error) {
	d.LoadedPaths = append(d.LoadedPaths, path)
	if d.LoadErr != nil {
		return nil, d.LoadErr
	}
	return entities.NewExternalDescriptor(path, d.Values), nil
}
