package calendar

import (
	"context"
	"strings"
	"sync"

	calendarerrors "hr-panel/internal/calendar/errors"
)

type Repository interface {
	Create(ctx context.Context, e *Event) error
	FindAll(ctx context.Context) ([]Event, error)
	FindByMonth(ctx context.Context, month string) ([]Event, error)
	Delete(ctx context.Context, id string) error
}

type memoryRepository struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, e *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, *e)
	return nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out, nil
}

func (r *memoryRepository) FindByMonth(ctx context.Context, month string) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Event, 0)
	for _, e := range r.events {
		if strings.HasPrefix(e.Date, month+"-") {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return calendarerrors.ErrEventNotFound
}
