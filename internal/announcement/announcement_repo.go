package announcement

import (
	"context"
	"sync"

	announcementerrors "hr-panel/internal/announcement/errors"
)

type Repository interface {
	Create(ctx context.Context, a *Announcement) error
	FindAll(ctx context.Context) ([]Announcement, error)
	Delete(ctx context.Context, id string) error
}

type memoryRepository struct {
	mu    sync.RWMutex
	items []Announcement
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

// Create prepends so listings come back newest first.
func (r *memoryRepository) Create(ctx context.Context, a *Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]Announcement{*a}, r.items...)
	return nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Announcement, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return announcementerrors.ErrNotFound
}
