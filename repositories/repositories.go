package repositories

import (
	"database/sql"

	"github.com/blogem/adminjournal/database"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Journal JournalRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB, dialect database.Dialect) *Repositories {
	return &Repositories{
		Journal: NewJournalRepository(db, dialect),
	}
}
