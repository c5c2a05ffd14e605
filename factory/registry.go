package factory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrUnknownGenre is returned by Lookup for unregistered genres.
	ErrUnknownGenre = errors.New("unknown genre")

	// ErrNilFactory is returned when a nil factory is used.
	ErrNilFactory = errors.New("nil factory")

	// ErrDuplicateGenre is returned when a genre is registered twice.
	ErrDuplicateGenre = errors.New("genre already registered")
)

// Registry maps genre names to factories.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]MovieNight
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]MovieNight)}
}

// DefaultRegistry returns a registry with the built-in "comedy" and
// "thriller" families.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register("comedy", Comedy{})
	_ = r.Register("thriller", Thriller{})
	return r
}

// Register adds f under genre. Genre names are case-insensitive.
func (r *Registry) Register(genre string, f MovieNight) error {
	key := normalize(genre)
	if key == "" {
		return fmt.Errorf("register: empty genre")
	}
	if f == nil {
		return fmt.Errorf("register %q: %w", genre, ErrNilFactory)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[key]; ok {
		return fmt.Errorf("register %q: %w", genre, ErrDuplicateGenre)
	}
	r.factories[key] = f
	return nil
}

// Lookup returns the factory registered for genre.
func (r *Registry) Lookup(genre string) (MovieNight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[normalize(genre)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenre, genre)
	}
	return f, nil
}

// Genres returns the registered genre names in sorted order.
func (r *Registry) Genres() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(genre string) string {
	return strings.ToLower(strings.TrimSpace(genre))
}
