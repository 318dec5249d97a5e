package persistence

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/blogem/adminjournal/config"
	"github.com/blogem/adminjournal/repositories"
)

// Registry keys of the built-in backends
const (
	BackendDB    = "db"
	BackendLog   = "log"
	BackendKafka = "kafka"
)

// Deps are the process-level handles a factory may use. The handles are
// shared; the backends built from them are not.
type Deps struct {
	Settings config.Settings
	Logger   *zap.Logger
	Journal  repositories.JournalRepository
	Kafka    MessageWriter
}

// Factory builds a fresh backend
type Factory func(deps Deps) (Backend, error)

// Registry maps stable backend keys to factories
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry holding the built-in backends
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(BackendDB, NewDBBackendFactory)
	r.Register(BackendLog, NewLogBackendFactory)
	r.Register(BackendKafka, NewKafkaBackendFactory)
	return r
}

// Register adds a factory under name. It panics if the name is empty,
// the factory is nil or the name is taken.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		panic("persistence: Register with empty backend name")
	}
	if factory == nil {
		panic("persistence: Register factory is nil for " + name)
	}
	if _, dup := r.factories[name]; dup {
		panic(fmt.Sprintf("persistence: Register called twice for backend %q", name))
	}
	r.factories[name] = factory
}

// Lookup returns the factory registered under name
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered keys in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
