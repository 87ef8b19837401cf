package payroll

import (
	"context"
	"sync"

	payrollerrors "hr-panel/internal/payroll/errors"
)

type Repository interface {
	// Upsert overwrites any existing entry for the same (user, month),
	// keeping the original entry id.
	Upsert(ctx context.Context, e *Entry) error
	FindByID(ctx context.Context, id string) (*Entry, error)
	FindByUserAndMonth(ctx context.Context, userID, month string) (*Entry, error)
	FindAll(ctx context.Context) ([]Entry, error)
	FindAllByUser(ctx context.Context, userID string) ([]Entry, error)
}

type memoryRepository struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Upsert(ctx context.Context, e *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].UserID == e.UserID && r.entries[i].Month == e.Month {
			e.ID = r.entries[i].ID
			r.entries[i] = *e
			return nil
		}
	}
	r.entries = append(r.entries, *e)
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.ID == id {
			copied := e
			return &copied, nil
		}
	}
	return nil, payrollerrors.ErrEntryNotFound
}

func (r *memoryRepository) FindByUserAndMonth(ctx context.Context, userID, month string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.UserID == userID && e.Month == month {
			copied := e
			return &copied, nil
		}
	}
	return nil, payrollerrors.ErrEntryNotFound
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *memoryRepository) FindAllByUser(ctx context.Context, userID string) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0)
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}
