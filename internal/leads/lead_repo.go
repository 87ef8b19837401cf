package leads

import (
	"context"
	"sync"

	leaderrors "hr-panel/internal/leads/errors"
)

type Repository interface {
	CreateBatch(ctx context.Context, batch []Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	FindAll(ctx context.Context) ([]Lead, error)
	FindAllByAssignee(ctx context.Context, userID string) ([]Lead, error)
	Update(ctx context.Context, l *Lead) error
}

type memoryRepository struct {
	mu    sync.RWMutex
	leads []Lead
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) CreateBatch(ctx context.Context, batch []Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leads = append(r.leads, batch...)
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.leads {
		if l.ID == id {
			copied := l
			return &copied, nil
		}
	}
	return nil, leaderrors.ErrLeadNotFound
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Lead, len(r.leads))
	copy(out, r.leads)
	return out, nil
}

func (r *memoryRepository) FindAllByAssignee(ctx context.Context, userID string) ([]Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Lead, 0)
	for _, l := range r.leads {
		if l.AssignedTo == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memoryRepository) Update(ctx context.Context, l *Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.leads {
		if r.leads[i].ID == l.ID {
			r.leads[i] = *l
			return nil
		}
	}
	return leaderrors.ErrLeadNotFound
}
