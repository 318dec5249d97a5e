package persistence

import (
	"context"
	"errors"

	"github.com/blogem/adminjournal/models"
	"github.com/blogem/adminjournal/repositories"
)

// DBBackend stores entries in the journal_entries table. It is the default
// backend.
type DBBackend struct {
	repo repositories.JournalRepository
}

// NewDBBackend creates a database backend over repo
func NewDBBackend(repo repositories.JournalRepository) *DBBackend {
	return &DBBackend{repo: repo}
}

// NewDBBackendFactory is the registry factory of the database backend
func NewDBBackendFactory(deps Deps) (Backend, error) {
	if deps.Journal == nil {
		return nil, errors.New("no journal repository configured")
	}
	return NewDBBackend(deps.Journal), nil
}

// Name implements Backend
func (b *DBBackend) Name() string { return BackendDB }

// Persist writes one row holding every attribute of the entry, using the
// frozen actor and subject type snapshots
func (b *DBBackend) Persist(ctx context.Context, entry *models.Entry) error {
	if entry == nil {
		return persistErr(BackendDB, ErrNilEntry)
	}
	if err := b.repo.Create(ctx, models.NewJournalEntry(entry)); err != nil {
		return persistErr(BackendDB, err)
	}
	return nil
}
