package services

import (
	"github.com/blogem/adminjournal/repositories"
)

// Services holds all service instances
type Services struct {
	Journal JournalService
	Cleanup CleanupService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, persister Persister) *Services {
	return &Services{
		Journal: NewJournalService(repos.Journal, persister),
		Cleanup: NewCleanupService(repos.Journal),
	}
}
