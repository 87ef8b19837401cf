package leave

import (
	"context"
	"strings"
	"time"

	"hr-panel/internal/domain"
	leaveerrors "hr-panel/internal/leave/errors"
	"hr-panel/internal/rbac"
	"hr-panel/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, actorID string, actorRole domain.Role) ([]LeaveResponse, error)
	Approve(ctx context.Context, id string) (LeaveResponse, error)
	Reject(ctx context.Context, id string) (LeaveResponse, error)
	OnApprovedLeave(ctx context.Context, userID, date string) bool
}

type service struct {
	repo   Repository
	users  user.Repository
	logger *zap.Logger
}

func NewService(repo Repository, users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, users: users, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error) {
	if !validType(req.Type) {
		return LeaveResponse{}, leaveerrors.ErrInvalidType
	}
	if strings.TrimSpace(req.Reason) == "" {
		return LeaveResponse{}, leaveerrors.ErrReasonRequired
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if start.After(end) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	l := &Request{
		ID:        uuid.New().String(),
		UserID:    actorID,
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    StatusPending,
		Reason:    strings.TrimSpace(req.Reason),
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave requested",
		zap.String("leave_id", l.ID),
		zap.String("user_id", actorID),
		zap.String("type", l.Type),
	)
	return mapToResponse(*l, s.userName(ctx, actorID)), nil
}

func (s *service) GetAll(ctx context.Context, actorID string, actorRole domain.Role) ([]LeaveResponse, error) {
	var (
		requests []Request
		err      error
	)
	if rbac.IsManagement(actorRole) {
		requests, err = s.repo.FindAll(ctx)
	} else {
		requests, err = s.repo.FindAllByUser(ctx, actorID)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(requests))
	for i, req := range requests {
		resp[i] = mapToResponse(req, s.userName(ctx, req.UserID))
	}
	return resp, nil
}

func (s *service) Approve(ctx context.Context, id string) (LeaveResponse, error) {
	return s.decide(ctx, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, id string) (LeaveResponse, error) {
	return s.decide(ctx, id, StatusRejected)
}

func (s *service) decide(ctx context.Context, id, status string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrAlreadyDecided
	}

	l.Status = status
	if err := s.repo.Update(ctx, l); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave decided",
		zap.String("leave_id", id),
		zap.String("status", status),
	)
	return mapToResponse(*l, s.userName(ctx, l.UserID)), nil
}

// OnApprovedLeave reports whether a day falls inside an approved request;
// used by the calendar month view.
func (s *service) OnApprovedLeave(ctx context.Context, userID, date string) bool {
	_, err := s.repo.FindApprovedOnDate(ctx, userID, date)
	return err == nil
}

func (s *service) userName(ctx context.Context, userID string) string {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "Unknown"
	}
	return u.Name
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}
