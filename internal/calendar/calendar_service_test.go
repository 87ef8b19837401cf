package calendar

import (
	"context"
	"testing"
	"time"

	"hr-panel/internal/attendance"
	calendarerrors "hr-panel/internal/calendar/errors"

	"github.com/stretchr/testify/assert"
)

type stubLeaveChecker struct {
	dates map[string]bool
}

func (s stubLeaveChecker) OnApprovedLeave(ctx context.Context, userID, date string) bool {
	return s.dates[date]
}

func TestCreateEventValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository(), attendance.NewMemoryRepository(), stubLeaveChecker{})
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, CreateEventRequest{Title: "Standup", Date: "2026-03-02", Type: "Party"})
	assert.ErrorIs(t, err, calendarerrors.ErrInvalidEventType)

	_, err = svc.CreateEvent(ctx, CreateEventRequest{Title: "Standup", Date: "March 2", Type: EventMeeting})
	assert.ErrorIs(t, err, calendarerrors.ErrInvalidDate)

	resp, err := svc.CreateEvent(ctx, CreateEventRequest{Title: "Standup", Date: "2026-03-02", Type: EventMeeting})
	assert.NoError(t, err)
	assert.Equal(t, EventMeeting, resp.Type)
}

func TestMonthViewOverlays(t *testing.T) {
	records := attendance.NewMemoryRepository()
	svc := NewService(NewMemoryRepository(), records, stubLeaveChecker{
		dates: map[string]bool{"2026-03-04": true},
	})
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// a holiday outranks everything on its day
	_, err := svc.CreateEvent(ctx, CreateEventRequest{Title: "Founders Day", Date: "2026-03-03", Type: EventHoliday})
	assert.NoError(t, err)

	// a worked day
	rec := attendance.NewRecord("u1", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	assert.NoError(t, rec.PunchOut(time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)))
	assert.NoError(t, records.Create(ctx, rec))

	view, err := svc.MonthView(ctx, "u1", "2026-03", now)
	assert.NoError(t, err)
	assert.Len(t, view.Days, 31)

	byDate := make(map[string]DayView)
	for _, d := range view.Days {
		byDate[d.Date] = d
	}

	assert.Equal(t, string(attendance.DayWork), byDate["2026-03-02"].Class)
	assert.Equal(t, string(attendance.DayHoliday), byDate["2026-03-03"].Class)
	assert.Len(t, byDate["2026-03-03"].Events, 1)
	assert.Equal(t, string(attendance.DayLeave), byDate["2026-03-04"].Class)
	assert.Equal(t, string(attendance.DayAbsent), byDate["2026-03-05"].Class)  // past weekday, no record
	assert.Equal(t, string(attendance.DayWeekend), byDate["2026-03-07"].Class) // Saturday
	assert.Equal(t, string(attendance.DayFuture), byDate["2026-03-20"].Class)

	_, err = svc.MonthView(ctx, "u1", "bogus", now)
	assert.ErrorIs(t, err, calendarerrors.ErrInvalidMonth)
}
