package leave

import (
	"context"
	"sync"

	leaveerrors "hr-panel/internal/leave/errors"
)

type Repository interface {
	Create(ctx context.Context, req *Request) error
	Update(ctx context.Context, req *Request) error
	FindByID(ctx context.Context, id string) (*Request, error)
	FindAll(ctx context.Context) ([]Request, error)
	FindAllByUser(ctx context.Context, userID string) ([]Request, error)
	FindApprovedOnDate(ctx context.Context, userID, date string) (*Request, error)
}

type memoryRepository struct {
	mu       sync.RWMutex
	requests []Request
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, req *Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append([]Request{*req}, r.requests...)
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, req *Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		if r.requests[i].ID == req.ID {
			r.requests[i] = *req
			return nil
		}
	}
	return leaveerrors.ErrLeaveNotFound
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, req := range r.requests {
		if req.ID == id {
			copied := req
			return &copied, nil
		}
	}
	return nil, leaveerrors.ErrLeaveNotFound
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Request, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *memoryRepository) FindAllByUser(ctx context.Context, userID string) ([]Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Request, 0)
	for _, req := range r.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *memoryRepository) FindApprovedOnDate(ctx context.Context, userID, date string) (*Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, req := range r.requests {
		if req.UserID == userID && req.Status == StatusApproved &&
			date >= req.StartDate && date <= req.EndDate {
			copied := req
			return &copied, nil
		}
	}
	return nil, leaveerrors.ErrLeaveNotFound
}
