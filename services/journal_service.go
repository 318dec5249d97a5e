package services

import (
	"context"
	"fmt"

	"github.com/blogem/adminjournal/models"
	"github.com/blogem/adminjournal/repositories"
)

// Persister hands an entry to a persistence backend. An empty ref selects
// the configured default. *persistence.Resolver implements it.
type Persister interface {
	Persist(ctx context.Context, entry *models.Entry, ref string) error
}

// JournalService interface defines journal recording and browsing
type JournalService interface {
	Record(ctx context.Context, in models.EntryInput) (*models.Entry, error)
	GetEntry(ctx context.Context, id int64) (*models.JournalEntry, error)
	ListEntries(ctx context.Context, filter models.JournalFilter) (*models.JournalPage, error)
}

// journalService implements JournalService interface
type journalService struct {
	journalRepo repositories.JournalRepository
	persister   Persister
}

// NewJournalService creates a new journal service
func NewJournalService(journalRepo repositories.JournalRepository, persister Persister) JournalService {
	return &journalService{
		journalRepo: journalRepo,
		persister:   persister,
	}
}

// Record builds an entry and persists it with the default backend. The
// entry is returned even when persisting fails so callers can log it.
func (s *journalService) Record(ctx context.Context, in models.EntryInput) (*models.Entry, error) {
	entry, err := models.NewEntry(in)
	if err != nil {
		return nil, err
	}
	if err := s.persister.Persist(ctx, entry, ""); err != nil {
		return entry, err
	}
	return entry, nil
}

// GetEntry retrieves a journal entry by ID
func (s *journalService) GetEntry(ctx context.Context, id int64) (*models.JournalEntry, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid journal entry ID: %d", id)
	}
	return s.journalRepo.GetByID(ctx, id)
}

// ListEntries retrieves one page of journal entries, newest first
func (s *journalService) ListEntries(ctx context.Context, filter models.JournalFilter) (*models.JournalPage, error) {
	if filter.Action != "" && !filter.Action.Valid() {
		return nil, fmt.Errorf("invalid action filter %q", filter.Action)
	}
	return s.journalRepo.List(ctx, filter.Normalize())
}
