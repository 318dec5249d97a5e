package persistence

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/blogem/adminjournal/config"
	"github.com/blogem/adminjournal/metrics"
	"github.com/blogem/adminjournal/models"
)

// ErrBackendNotFound is returned when a backend key is not registered
var ErrBackendNotFound = errors.New("persistence backend not found")

// BackendLoadError reports a registered backend whose factory failed
type BackendLoadError struct {
	Ref string
	Err error
}

func (e *BackendLoadError) Error() string {
	return fmt.Sprintf("failed to load persistence backend %q: %v", e.Ref, e.Err)
}

func (e *BackendLoadError) Unwrap() error { return e.Err }

// Resolver picks the backend for each persist call. Nothing is cached:
// settings are read and a new backend is built on every Resolve.
type Resolver struct {
	registry *Registry
	settings config.Provider
	deps     Deps
}

// NewResolver creates a resolver. deps.Settings is ignored; the provider is
// consulted on every call instead.
func NewResolver(registry *Registry, settings config.Provider, deps Deps) *Resolver {
	if deps.Logger == nil {
		deps.Logger = zap.L()
	}
	return &Resolver{registry: registry, settings: settings, deps: deps}
}

// Resolve builds the backend named by ref, or the configured default when
// ref is empty
func (r *Resolver) Resolve(ref string) (Backend, error) {
	settings := r.settings.Settings()

	if ref == "" {
		ref = settings.PersistenceBackend
	}
	if ref == "" {
		ref = config.DefaultPersistenceBackend
	}

	factory, ok := r.registry.Lookup(ref)
	if !ok {
		return nil, errors.Wrapf(ErrBackendNotFound, "%q (registered: %v)", ref, r.registry.Names())
	}

	deps := r.deps
	deps.Settings = settings
	backend, err := factory(deps)
	if err != nil {
		return nil, &BackendLoadError{Ref: ref, Err: err}
	}
	return backend, nil
}

// Persist resolves a backend and hands it the entry. Resolution errors are
// returned as they are so a misconfigured journal fails loudly.
func (r *Resolver) Persist(ctx context.Context, entry *models.Entry, ref string) error {
	backend, err := r.Resolve(ref)
	if err != nil {
		return err
	}

	if err := backend.Persist(ctx, entry); err != nil {
		metrics.PersistFailures.WithLabelValues(backend.Name()).Inc()
		return err
	}

	metrics.EntriesPersisted.WithLabelValues(backend.Name()).Inc()
	return nil
}
