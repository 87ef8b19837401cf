package attendance

import (
	"context"
	"sync"

	attendanceerrors "hr-panel/internal/attendance/errors"
)

type Repository interface {
	Create(ctx context.Context, rec *Record) error
	Update(ctx context.Context, rec *Record) error
	FindByID(ctx context.Context, id string) (*Record, error)
	FindByUserAndDate(ctx context.Context, userID, date string) (*Record, error)
	FindAll(ctx context.Context) ([]Record, error)
	FindAllByUser(ctx context.Context, userID string) ([]Record, error)
}

// memoryRepository keeps every record of the session, newest first like
// the panel displays them. Records are never deleted.
type memoryRepository struct {
	mu      sync.RWMutex
	records []Record
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.UserID == rec.UserID && existing.Date == rec.Date {
			return attendanceerrors.ErrAlreadyPunchedIn
		}
	}
	r.records = append([]Record{cloneRecord(*rec)}, r.records...)
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == rec.ID {
			r.records[i] = cloneRecord(*rec)
			return nil
		}
	}
	return attendanceerrors.ErrRecordNotFound
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.records {
		if r.records[i].ID == id {
			rec := cloneRecord(r.records[i])
			return &rec, nil
		}
	}
	return nil, attendanceerrors.ErrRecordNotFound
}

func (r *memoryRepository) FindByUserAndDate(ctx context.Context, userID, date string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.records {
		if r.records[i].UserID == userID && r.records[i].Date == date {
			rec := cloneRecord(r.records[i])
			return &rec, nil
		}
	}
	return nil, attendanceerrors.ErrRecordNotFound
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, len(r.records))
	for i, rec := range r.records {
		out[i] = cloneRecord(rec)
	}
	return out, nil
}

func (r *memoryRepository) FindAllByUser(ctx context.Context, userID string) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, 0)
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, cloneRecord(rec))
		}
	}
	return out, nil
}

// cloneRecord copies segments so callers cannot mutate stored state
// outside a repository write.
func cloneRecord(rec Record) Record {
	segs := make([]Segment, len(rec.Segments))
	copy(segs, rec.Segments)
	rec.Segments = segs
	if rec.CheckOut != nil {
		v := *rec.CheckOut
		rec.CheckOut = &v
	}
	return rec
}
