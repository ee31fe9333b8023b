package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/buildcfg/internal/domain/repositories"
)

// WriterRegistry manages all registered output formats.
type WriterRegistry struct {
	writers map[string]domainRepos.ProjectWriterRepository
}

// NewWriterRegistry creates an empty writer registry.
func NewWriterRegistry() *WriterRegistry {
	return &WriterRegistry{
		writers: make(map[string]domainRepos.ProjectWriterRepository),
	}
}

// Register adds a writer under its name (e.g. "yaml").
func (r *WriterRegistry) Register(w domainRepos.ProjectWriterRepository) {
	r.writers[w.Name()] = w
}

// Get returns the writer for the given output format.
func (r *WriterRegistry) Get(name string) (domainRepos.ProjectWriterRepository, error) {
	w, ok := r.writers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %q", name)
	}
	return w, nil
}

// Names returns the sorted list of registered output formats.
func (r *WriterRegistry) Names() []string {
	names := make([]string, 0, len(r.writers))
	for name := range r.writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
