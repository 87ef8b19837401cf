package attendance

import (
	"context"
	"time"

	attendanceerrors "hr-panel/internal/attendance/errors"
	"hr-panel/internal/domain"
	"hr-panel/internal/rbac"
	"hr-panel/internal/user"

	"go.uber.org/zap"
)

type Service interface {
	PunchIn(ctx context.Context, userID string, now time.Time) (RecordResponse, error)
	ChangeState(ctx context.Context, userID, segType string, now time.Time) (RecordResponse, error)
	PunchOut(ctx context.Context, userID string, now time.Time) (RecordResponse, error)
	Today(ctx context.Context, userID string, now time.Time) (TodayResponse, error)
	GetAll(ctx context.Context, actorID string, actorRole domain.Role) ([]RecordResponse, error)
	OverrideStatus(ctx context.Context, recordID, status string) (RecordResponse, error)
	ExportCSV(ctx context.Context, actorID string, actorRole domain.Role, now time.Time) ([]byte, string, error)
}

type service struct {
	repo   Repository
	users  user.Repository
	logger *zap.Logger
}

func NewService(repo Repository, users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, users: users, logger: l}
}

func (s *service) PunchIn(ctx context.Context, userID string, now time.Time) (RecordResponse, error) {
	rec := NewRecord(userID, now)
	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Warn("punch in rejected", zap.String("user_id", userID), zap.Error(err))
		return RecordResponse{}, err
	}
	s.logger.Info("punch in",
		zap.String("user_id", userID),
		zap.String("date", rec.Date),
		zap.String("check_in", rec.CheckIn),
	)
	return mapToResponse(*rec, s.userName(ctx, userID)), nil
}

func (s *service) ChangeState(ctx context.Context, userID, segType string, now time.Time) (RecordResponse, error) {
	rec, err := s.todayRecord(ctx, userID, now)
	if err != nil {
		return RecordResponse{}, err
	}

	if err := rec.ApplyStateChange(segType, now); err != nil {
		return RecordResponse{}, err
	}
	if err := s.repo.Update(ctx, rec); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("state change",
		zap.String("user_id", userID),
		zap.String("type", segType),
	)
	return mapToResponse(*rec, s.userName(ctx, userID)), nil
}

func (s *service) PunchOut(ctx context.Context, userID string, now time.Time) (RecordResponse, error) {
	rec, err := s.todayRecord(ctx, userID, now)
	if err != nil {
		return RecordResponse{}, err
	}

	if err := rec.PunchOut(now); err != nil {
		return RecordResponse{}, err
	}
	if err := s.repo.Update(ctx, rec); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("punch out",
		zap.String("user_id", userID),
		zap.String("status", rec.Status),
	)
	return mapToResponse(*rec, s.userName(ctx, userID)), nil
}

func (s *service) Today(ctx context.Context, userID string, now time.Time) (TodayResponse, error) {
	rec, err := s.repo.FindByUserAndDate(ctx, userID, DateOf(now))
	if err != nil {
		// no record yet: ready to start
		return TodayResponse{State: "Ready"}, nil
	}

	st, err := rec.Stats(now)
	if err != nil {
		return TodayResponse{}, err
	}
	resp := mapToResponse(*rec, "")
	return TodayResponse{
		Record: &resp,
		State:  rec.CurrentState(),
		Stats:  st,
	}, nil
}

// GetAll applies the visibility rule: management roles see every record,
// everyone else only their own.
func (s *service) GetAll(ctx context.Context, actorID string, actorRole domain.Role) ([]RecordResponse, error) {
	var (
		records []Record
		err     error
	)
	if rbac.IsManagement(actorRole) {
		records, err = s.repo.FindAll(ctx)
	} else {
		records, err = s.repo.FindAllByUser(ctx, actorID)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]RecordResponse, len(records))
	for i, rec := range records {
		resp[i] = mapToResponse(rec, s.userName(ctx, rec.UserID))
	}
	return resp, nil
}

// OverrideStatus is the manual management path; it is the only way a
// record can become "Late".
func (s *service) OverrideStatus(ctx context.Context, recordID, status string) (RecordResponse, error) {
	if !validOverrideStatus(status) {
		return RecordResponse{}, attendanceerrors.ErrInvalidStatus
	}

	rec, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		return RecordResponse{}, err
	}
	rec.Status = status
	if err := s.repo.Update(ctx, rec); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("status override",
		zap.String("record_id", recordID),
		zap.String("status", status),
	)
	return mapToResponse(*rec, s.userName(ctx, rec.UserID)), nil
}

func (s *service) todayRecord(ctx context.Context, userID string, now time.Time) (*Record, error) {
	rec, err := s.repo.FindByUserAndDate(ctx, userID, DateOf(now))
	if err != nil {
		return nil, attendanceerrors.ErrNoRecordToday
	}
	return rec, nil
}

func (s *service) userName(ctx context.Context, userID string) string {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "Unknown"
	}
	return u.Name
}
