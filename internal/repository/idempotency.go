package repository

import (
	"context"
	"sync"
	"time"

	"github.com/benx421/simple-banking/internal/models"
)

// IdempotencyRepository defines the interface for replayable response storage
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type idempotencyEntry struct {
	key         string
	requestPath string
}

// idempotencyRepository keeps responses in process memory. The card table is
// the only persisted state, so replays do not survive a restart.
type idempotencyRepository struct {
	entries map[idempotencyEntry]models.IdempotencyKey
	now     func() time.Time
	ttl     time.Duration
	mu      sync.RWMutex
}

// NewIdempotencyRepository creates an in-memory IdempotencyRepository whose
// entries stop replaying once they are older than ttl. A zero ttl keeps them
// until DeleteOlderThan removes them.
func NewIdempotencyRepository(ttl time.Duration) IdempotencyRepository {
	return &idempotencyRepository{
		entries: make(map[idempotencyEntry]models.IdempotencyKey),
		now:     time.Now,
		ttl:     ttl,
	}
}

// Get returns the stored response, or nil when none is live
func (r *idempotencyRepository) Get(_ context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.entries[idempotencyEntry{key: key, requestPath: requestPath}]
	if !ok || r.expired(stored) {
		return nil, nil
	}

	return &stored, nil
}

// Store records a response. The first response stored for a key and path wins.
func (r *idempotencyRepository) Store(_ context.Context, idemKey *models.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := idempotencyEntry{key: idemKey.Key, requestPath: idemKey.RequestPath}
	if existing, ok := r.entries[id]; ok && !r.expired(existing) {
		return nil
	}

	stored := *idemKey
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now()
	}
	r.entries[id] = stored

	return nil
}

// DeleteOlderThan removes entries created before cutoff
func (r *idempotencyRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, stored := range r.entries {
		if stored.CreatedAt.Before(cutoff) {
			delete(r.entries, id)
			deleted++
		}
	}

	return deleted, nil
}

func (r *idempotencyRepository) expired(stored models.IdempotencyKey) bool {
	return r.ttl > 0 && r.now().Sub(stored.CreatedAt) > r.ttl
}
