package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/buildcfg/internal/domain/repositories"
)

// DocumentRegistry manages all registered document format implementations.
type DocumentRegistry struct {
	documents map[string]domainRepos.DocumentRepository
}

// NewDocumentRegistry creates an empty document registry.
func NewDocumentRegistry() *DocumentRegistry {
	return &DocumentRegistry{
		documents: make(map[string]domainRepos.DocumentRepository),
	}
}

// Register adds a document format under its name.
func (r *DocumentRegistry) Register(d domainRepos.DocumentRepository) {
	r.documents[d.Name()] = d
}

// Get returns the document format with the given name, or nil if not registered.
func (r *DocumentRegistry) Get(name string) domainRepos.DocumentRepository {
	return r.documents[name]
}

// Resolve picks the format for path: the named one when name is set,
// otherwise the first registered format (by name) that detects the file.
func (r *DocumentRegistry) Resolve(name, path string) (domainRepos.DocumentRepository, error) {
	if name != "" {
		d := r.Get(name)
		if d == nil {
			return nil, fmt.Errorf("unknown document format: %q (known: %v)", name, r.Names())
		}
		return d, nil
	}

	for _, d := range r.All() {
		if d.Detect(path) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("cannot detect document format of %q (known: %v)", path, r.Names())
}

// All returns every registered document format ordered by name.
func (r *DocumentRegistry) All() []domainRepos.DocumentRepository {
	result := make([]domainRepos.DocumentRepository, 0, len(r.documents))
	for _, name := range r.Names() {
		result = append(result, r.documents[name])
	}
	return result
}

// Names returns the sorted list of registered format names.
func (r *DocumentRegistry) Names() []string {
	names := make([]string, 0, len(r.documents))
	for name := range r.documents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
