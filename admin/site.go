package admin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/blogem/adminjournal/models"
)

var (
	// ErrAlreadyRegistered is returned when a subject type has a handler
	ErrAlreadyRegistered = errors.New("subject type already registered")
	// ErrNotRegistered is returned when a subject type has no handler
	ErrNotRegistered = errors.New("subject type not registered")
)

// Decorator wraps the handler registered for a subject type. Returning h
// unchanged leaves the registration alone.
type Decorator func(subjectType models.SubjectType, h Handler) Handler

// Site is a registry of admin handlers keyed by subject type
type Site struct {
	mu         sync.RWMutex
	handlers   map[models.SubjectType]Handler
	decorators []Decorator
	marks      map[string]struct{}
}

// NewSite returns an empty site
func NewSite() *Site {
	return &Site{
		handlers: make(map[models.SubjectType]Handler),
		marks:    make(map[string]struct{}),
	}
}

// Register adds the handler for subjectType, applying every decorator
// installed with Use
func (s *Site) Register(subjectType models.SubjectType, h Handler) error {
	if subjectType.IsZero() || h == nil {
		return fmt.Errorf("register %q: subject type and handler are required", subjectType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.handlers[subjectType]; ok {
		return errors.Wrap(ErrAlreadyRegistered, subjectType.String())
	}
	for _, d := range s.decorators {
		h = d(subjectType, h)
	}
	s.handlers[subjectType] = h
	return nil
}

// Unregister removes the handler for subjectType
func (s *Site) Unregister(subjectType models.SubjectType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.handlers[subjectType]; !ok {
		return errors.Wrap(ErrNotRegistered, subjectType.String())
	}
	delete(s.handlers, subjectType)
	return nil
}

// Handler returns the (decorated) handler of subjectType
func (s *Site) Handler(subjectType models.SubjectType) (Handler, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.handlers[subjectType]
	return h, ok
}

// Each calls fn for every registration, ordered by subject type label
func (s *Site) Each(fn func(subjectType models.SubjectType, h Handler)) {
	s.mu.RLock()
	types := make([]models.SubjectType, 0, len(s.handlers))
	handlers := make(map[models.SubjectType]Handler, len(s.handlers))
	for t, h := range s.handlers {
		types = append(types, t)
		handlers[t] = h
	}
	s.mu.RUnlock()

	sort.Slice(types, func(i, j int) bool { return types[i].String() < types[j].String() })
	for _, t := range types {
		fn(t, handlers[t])
	}
}

// Use installs a decorator. It wraps the handlers already registered and
// every handler registered later.
func (s *Site) Use(d Decorator) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.decorators = append(s.decorators, d)
	for t, h := range s.handlers {
		s.handlers[t] = d(t, h)
	}
}

// Mark sets the named marker on the site. It reports false when the marker
// was already set.
func (s *Site) Mark(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.marks[name]; ok {
		return false
	}
	s.marks[name] = struct{}{}
	return true
}
