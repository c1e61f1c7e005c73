package document

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Factory builds a document writing to stem plus the format's own
// extension. A nil logger uses a discard logger.
type Factory func(stem string, size PageSize, logger *slog.Logger) (Doc, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a format factory to the registry.
// Called by format implementations in their init() functions.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Get retrieves a format factory by name.
func Get(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// New creates a document of the given format writing to stem.
func New(format, stem string, size PageSize, logger *slog.Logger) (Doc, error) {
	if format == "" {
		return nil, fmt.Errorf("output format not specified")
	}

	factory, ok := Get(format)
	if !ok {
		return nil, &UnknownFormatError{
			Format:    format,
			Available: ListFormats(),
		}
	}
	return factory(stem, size, logger)
}

// ListFormats returns all registered format names (sorted).
func ListFormats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if an output format is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// UnknownFormatError is returned when an unknown output format is requested.
type UnknownFormatError struct {
	Format    string
	Available []string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format %q\nAvailable formats: %v\nHint: Check plot.backend in sigplot.yaml", e.Format, e.Available)
}
