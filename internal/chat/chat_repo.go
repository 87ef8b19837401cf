package chat

import (
	"context"
	"sync"

	chaterrors "hr-panel/internal/chat/errors"
)

type GroupRepository interface {
	Create(ctx context.Context, g *Group) error
	FindByID(ctx context.Context, id string) (*Group, error)
	FindAllForUser(ctx context.Context, userID string) ([]Group, error)
	Update(ctx context.Context, g *Group) error
	Delete(ctx context.Context, id string) error
}

type MessageRepository interface {
	Create(ctx context.Context, m *Message) error
	// FindByReceiver returns every message addressed to a group id, in
	// send order.
	FindByReceiver(ctx context.Context, receiverID string) ([]Message, error)
	// FindDirect returns the two-way conversation between two users.
	FindDirect(ctx context.Context, a, b string) ([]Message, error)
	// MarkRead flags messages from sender addressed to receiver as read.
	MarkRead(ctx context.Context, senderID, receiverID string) error
	DeleteByReceiver(ctx context.Context, receiverID string) error
}

type memoryGroupRepository struct {
	mu     sync.RWMutex
	groups []Group
}

func NewMemoryGroupRepository() GroupRepository {
	return &memoryGroupRepository{}
}

func cloneGroup(g Group) Group {
	copied := g
	copied.Members = append([]string(nil), g.Members...)
	return copied
}

func (r *memoryGroupRepository) Create(ctx context.Context, g *Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.groups = append(r.groups, cloneGroup(*g))
	return nil
}

func (r *memoryGroupRepository) FindByID(ctx context.Context, id string) (*Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.groups {
		if g.ID == id {
			copied := cloneGroup(g)
			return &copied, nil
		}
	}
	return nil, chaterrors.ErrGroupNotFound
}

func (r *memoryGroupRepository) FindAllForUser(ctx context.Context, userID string) ([]Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Group, 0)
	for _, g := range r.groups {
		if g.HasMember(userID) {
			out = append(out, cloneGroup(g))
		}
	}
	return out, nil
}

func (r *memoryGroupRepository) Update(ctx context.Context, g *Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.groups {
		if r.groups[i].ID == g.ID {
			r.groups[i] = cloneGroup(*g)
			return nil
		}
	}
	return chaterrors.ErrGroupNotFound
}

func (r *memoryGroupRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.groups {
		if r.groups[i].ID == id {
			r.groups = append(r.groups[:i], r.groups[i+1:]...)
			return nil
		}
	}
	return chaterrors.ErrGroupNotFound
}

type memoryMessageRepository struct {
	mu       sync.RWMutex
	messages []Message
}

func NewMemoryMessageRepository() MessageRepository {
	return &memoryMessageRepository{}
}

func (r *memoryMessageRepository) Create(ctx context.Context, m *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, *m)
	return nil
}

func (r *memoryMessageRepository) FindByReceiver(ctx context.Context, receiverID string) ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Message, 0)
	for _, m := range r.messages {
		if m.ReceiverID == receiverID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memoryMessageRepository) FindDirect(ctx context.Context, a, b string) ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Message, 0)
	for _, m := range r.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memoryMessageRepository) MarkRead(ctx context.Context, senderID, receiverID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.messages {
		if r.messages[i].SenderID == senderID && r.messages[i].ReceiverID == receiverID {
			r.messages[i].Read = true
		}
	}
	return nil
}

func (r *memoryMessageRepository) DeleteByReceiver(ctx context.Context, receiverID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.messages[:0]
	for _, m := range r.messages {
		if m.ReceiverID != receiverID {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return nil
}
