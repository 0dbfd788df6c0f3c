package service

import (
	"context"
	"log"
	"time"

	"github.com/strataworks/website-api/internal/models"
)

// AttemptStore is the persistence collaborator for rate-limit bookkeeping.
type AttemptStore interface {
	CountSince(ctx context.Context, email string, since time.Time) (int, error)
	Record(ctx context.Context, rec models.AttemptRecord) error
}

// RateLimitService caps submissions per applicant email within a sliding
// window. The window check and the record write are not atomic, so two
// concurrent submissions near the boundary can both be admitted; the cap is
// soft under concurrency and that is accepted.
type RateLimitService struct {
	store  AttemptStore
	limit  int
	window time.Duration
	ttl    time.Duration

	// failOpen admits the attempt when the store itself errors. A rate-limit
	// bookkeeping outage must never block legitimate submissions.
	failOpen bool

	now func() time.Time
}

func NewRateLimitService(store AttemptStore) *RateLimitService {
	return &RateLimitService{
		store:    store,
		limit:    3,
		window:   time.Hour,
		ttl:      24 * time.Hour,
		failOpen: true,
		now:      time.Now,
	}
}

// CheckAndRecord reports whether another submission from email is allowed
// right now, and if so records the attempt. A denied attempt writes nothing.
func (s *RateLimitService) CheckAndRecord(ctx context.Context, email, origin string) bool {
	now := s.now()

	n, err := s.store.CountSince(ctx, email, now.Add(-s.window))
	if err != nil {
		log.Printf("Warning: rate-limit count failed for %s, admitting: %v", email, err)
		return s.failOpen
	}
	if n >= s.limit {
		return false
	}

	rec := models.AttemptRecord{
		Email:     email,
		At:        now,
		Origin:    origin,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.store.Record(ctx, rec); err != nil {
		log.Printf("Warning: rate-limit record failed for %s, admitting: %v", email, err)
		return s.failOpen
	}
	return true
}
