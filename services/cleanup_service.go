package services

import (
	"context"
	"fmt"
	"time"

	"github.com/blogem/adminjournal/metrics"
	"github.com/blogem/adminjournal/repositories"
)

// CleanupService interface defines journal retention
type CleanupService interface {
	ClearExpired(ctx context.Context, days int) (int64, error)
}

// cleanupService implements CleanupService interface
type cleanupService struct {
	journalRepo repositories.JournalRepository
	now         func() time.Time
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(journalRepo repositories.JournalRepository) CleanupService {
	return &cleanupService{
		journalRepo: journalRepo,
		now:         time.Now,
	}
}

// ClearExpired deletes entries older than the given number of days and
// returns how many were removed
func (s *cleanupService) ClearExpired(ctx context.Context, days int) (int64, error) {
	if days < 0 {
		return 0, fmt.Errorf("expiry days must not be negative, got %d", days)
	}

	cutoff := s.now().AddDate(0, 0, -days)
	deleted, err := s.journalRepo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clear journal entries before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	metrics.EntriesCleared.Add(float64(deleted))
	return deleted, nil
}
