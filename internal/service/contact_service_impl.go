package service

import (
	"context"
	"errors"
	"time"

	"github.com/mmi-portfolio/backend/internal/metrics"
	"github.com/mmi-portfolio/backend/internal/model"
	"github.com/mmi-portfolio/backend/internal/repository"
)

// ErrStoreUnavailable is returned by Submit when no store is configured.
var ErrStoreUnavailable = errors.New("database not available")

const noteMaxRunes = 60

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo    repository.MessageRepository
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.MessageRepository, m *metrics.Metrics) ContactService {
	return &contactServiceImpl{repo: repo, metrics: m, now: time.Now}
}

// Submit validates msg, stamps CreatedAt and saves it.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.Message) error {
	if err := msg.Validate(); err != nil {
		s.metrics.ContactSubmission(metrics.ContactInvalid)
		return err
	}
	msg.CreatedAt = s.now().UTC()
	if err := s.repo.Save(ctx, msg); err != nil {
		s.metrics.ContactSubmission(metrics.ContactNote)
		if errors.Is(err, repository.ErrNoStore) {
			return ErrStoreUnavailable
		}
		return err
	}
	s.metrics.ContactSubmission(metrics.ContactStored)
	return nil
}

// StorageNote is the note attached to an acknowledged but unsaved
// submission.
func StorageNote(err error) string {
	return "Stored locally only: " + truncate(err.Error(), noteMaxRunes)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
