package calendar

import (
	"context"
	"strings"
	"time"

	"hr-panel/internal/attendance"
	calendarerrors "hr-panel/internal/calendar/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LeaveChecker reports whether a user is on approved leave on a day.
// Satisfied by the leave service.
type LeaveChecker interface {
	OnApprovedLeave(ctx context.Context, userID, date string) bool
}

type Service interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (EventResponse, error)
	GetEvents(ctx context.Context) ([]EventResponse, error)
	DeleteEvent(ctx context.Context, id string) error
	MonthView(ctx context.Context, userID, month string, now time.Time) (MonthViewResponse, error)
}

type service struct {
	repo    Repository
	records attendance.Repository
	leaves  LeaveChecker
	logger  *zap.Logger
}

func NewService(repo Repository, records attendance.Repository, leaves LeaveChecker, logger ...*zap.Logger) Service {
	l := zap.L().Named("calendar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.service")
	}
	return &service{repo: repo, records: records, leaves: leaves, logger: l}
}

func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (EventResponse, error) {
	if !validEventType(req.Type) {
		return EventResponse{}, calendarerrors.ErrInvalidEventType
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return EventResponse{}, calendarerrors.ErrInvalidDate
	}

	e := &Event{
		ID:    uuid.New().String(),
		Title: strings.TrimSpace(req.Title),
		Date:  req.Date,
		Type:  req.Type,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return EventResponse{}, err
	}

	s.logger.Info("event created",
		zap.String("event_id", e.ID),
		zap.String("date", e.Date),
		zap.String("type", e.Type),
	)
	return mapToResponse(*e), nil
}

func (s *service) GetEvents(ctx context.Context) ([]EventResponse, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]EventResponse, len(events))
	for i, e := range events {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) DeleteEvent(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("event deleted", zap.String("event_id", id))
	return nil
}

// MonthView classifies every day of the month for one user, overlaying
// scheduled events on top of the attendance-derived day class.
func (s *service) MonthView(ctx context.Context, userID, month string, now time.Time) (MonthViewResponse, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return MonthViewResponse{}, calendarerrors.ErrInvalidMonth
	}

	events, err := s.repo.FindByMonth(ctx, month)
	if err != nil {
		return MonthViewResponse{}, err
	}
	byDate := make(map[string][]EventResponse)
	holidays := make(map[string]bool)
	for _, e := range events {
		byDate[e.Date] = append(byDate[e.Date], mapToResponse(e))
		if e.Type == EventHoliday {
			holidays[e.Date] = true
		}
	}

	view := MonthViewResponse{Month: month}
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")

		rec, err := s.records.FindByUserAndDate(ctx, userID, date)
		if err != nil {
			rec = nil
		}
		class := attendance.ClassifyDay(d, now, holidays[date], s.leaves.OnApprovedLeave(ctx, userID, date), rec)

		view.Days = append(view.Days, DayView{
			Date:   date,
			Class:  string(class),
			Events: byDate[date],
		})
	}
	return view, nil
}
