package user

import (
	"context"
	"strings"
	"sync"

	"hr-panel/internal/domain"
	usererrors "hr-panel/internal/user/errors"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	FindByRole(ctx context.Context, role domain.Role) ([]User, error)
	CountByRole(ctx context.Context, role domain.Role) (int, error)
}

// memoryRepository holds the user collection for the session. All state is
// in process memory; there is no persistence layer behind it.
type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
	order []string // insertion order for stable listings
}

func NewMemoryRepository() Repository {
	return &memoryRepository{users: make(map[string]User)}
}

func (r *memoryRepository) Create(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.ID]; exists {
		return usererrors.ErrEmailTaken
	}
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return usererrors.ErrEmailTaken
		}
	}

	r.users[u.ID] = *u
	r.order = append(r.order, u.ID)
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.ID]; !exists {
		return usererrors.ErrUserNotFound
	}
	for id, existing := range r.users {
		if id != u.ID && strings.EqualFold(existing.Email, u.Email) {
			return usererrors.ErrEmailTaken
		}
	}

	r.users[u.ID] = *u
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[id]; !exists {
		return usererrors.ErrUserNotFound
	}
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.users[id]
	if !exists {
		return nil, usererrors.ErrUserNotFound
	}
	return &u, nil
}

func (r *memoryRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := u
			return &copied, nil
		}
	}
	return nil, usererrors.ErrUserNotFound
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, 0, len(r.users))
	for _, id := range r.order {
		out = append(out, r.users[id])
	}
	return out, nil
}

func (r *memoryRepository) FindByRole(ctx context.Context, role domain.Role) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, 0)
	for _, id := range r.order {
		if u := r.users[id]; u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memoryRepository) CountByRole(ctx context.Context, role domain.Role) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}
