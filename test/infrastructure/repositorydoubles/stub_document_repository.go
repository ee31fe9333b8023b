//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	"github.com/rios0rios0/buildcfg/internal/domain/repositories"
)

// SpyDocumentRepository implements repositories.DocumentRepository as a configurable spy.
type SpyDocumentRepository struct {
	// --- identity ---
	DocumentName string
	Extension    string // Detect matches paths ending with this suffix

	// --- Load ---
	Project     *entities.Project
	LoadErr     error
	LoadedPaths []string
}

var _ repositories.DocumentRepository = (*SpyDocumentRepository)(nil)

func (d *SpyDocumentRepository) Name() string { return d.DocumentName }

func (d *SpyDocumentRepository) Detect(path string) bool {
	return d.Extension != "" && strings.HasSuffix(path, d.Extension)
}

func (d *SpyDocumentRepository) Load(_ context.Context, path string) (*entities.Project, error) {
	d.LoadedPaths = append(d.LoadedPaths, path)
	if d.LoadErr != nil {
		return nil, d.LoadErr
	}
	return d.Project, nil
}

// DummyDocumentRepository is a no-op implementation of repositories.DocumentRepository.
type DummyDocumentRepository struct{}

var _ repositories.DocumentRepository = (*DummyDocumentRepository)(nil)

func (d *DummyDocumentRepository) Name() string { return "dummy" }

func (d *DummyDocumentRepository) Detect(_ string) bool { return false }

func (d *DummyDocumentRepository) Load(_ context.Context, _ string) (*entities.Project, error) {
	return nil, nil //nolint:nilnil // dummy no-op
}
