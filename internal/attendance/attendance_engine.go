package attendance

import (
	"fmt"
	"time"

	attendanceerrors "hr-panel/internal/attendance/errors"

	"github.com/google/uuid"
)

// The day state machine: NoRecord -> Working -> {OnBreak, InMeeting} ->
// Working -> Completed. All arithmetic is wall-clock minutes since
// midnight; a day's segments are assumed to start and end on the same
// calendar day.

const fullDayHours = 9.0
const halfDayHours = 5.0

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(v string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(v, "%d:%d", &h, &m); err != nil {
		return 0, attendanceerrors.ErrInvalidClock
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, attendanceerrors.ErrInvalidClock
	}
	return h*60 + m, nil
}

// Clock formats a time as the HH:MM wall clock used throughout records.
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// DateOf formats a record's calendar day.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}

// NewRecord is the punch-in transition: a fresh record with an open Work
// segment starting at the punch time.
func NewRecord(userID string, now time.Time) *Record {
	at := Clock(now)
	return &Record{
		ID:      uuid.New().String(),
		UserID:  userID,
		Date:    DateOf(now),
		CheckIn: at,
		Status:  StatusPresent, // provisional until punch-out
		Segments: []Segment{{
			ID:        uuid.New().String(),
			Type:      SegmentWork,
			StartTime: at,
		}},
	}
}

// ApplyStateChange closes the open segment at the triggering time and opens
// a segment of the requested type. When the record has no segments at all
// but a check-in time, a Work segment spanning [checkIn, now) is
// synthesized first; this backfills records created before activity logs
// existed and is deliberate, not a fallback.
func (r *Record) ApplyStateChange(segType string, now time.Time) error {
	if r.Completed() {
		return attendanceerrors.ErrDayCompleted
	}
	if !validSegmentType(segType) {
		return attendanceerrors.ErrInvalidSegmentType
	}

	at := Clock(now)

	if open := r.OpenSegment(); open != nil {
		open.EndTime = &at
	} else if len(r.Segments) == 0 && r.CheckIn != "" {
		end := at
		r.Segments = append(r.Segments, Segment{
			ID:        uuid.New().String(),
			Type:      SegmentWork,
			StartTime: r.CheckIn,
			EndTime:   &end,
		})
	}

	r.Segments = append(r.Segments, Segment{
		ID:        uuid.New().String(),
		Type:      segType,
		StartTime: at,
	})
	return nil
}

// PunchOut closes the open segment, stamps the check-out time and derives
// the final status from cumulative Work hours. The record is terminal
// afterwards.
func (r *Record) PunchOut(now time.Time) error {
	if r.Completed() {
		return attendanceerrors.ErrDayCompleted
	}

	at := Clock(now)
	if open := r.OpenSegment(); open != nil {
		open.EndTime = &at
	}
	r.CheckOut = &at

	st, err := r.Stats(now)
	if err != nil {
		return err
	}
	r.Status = classifyStatus(st.WorkHours)
	return nil
}

// classifyStatus maps cumulative Work hours (not total login) to the final
// day status.
func classifyStatus(workHours float64) string {
	switch {
	case workHours >= fullDayHours:
		return StatusPresent
	case workHours >= halfDayHours:
		return StatusHalfDay
	default:
		return StatusAbsent
	}
}

// Stats are the live (or final) derived quantities for a record.
type Stats struct {
	WorkHours       float64 `json:"workHours"`
	BreakHours      float64 `json:"breakHours"`
	TotalLoginHours float64 `json:"totalLoginHours"`
	OvertimeHours   float64 `json:"overtimeHours"`
}

// Stats totals the record's segments. An open segment is measured up to
// `now`; Bio Break, Lunch Break and Meeting all land in the break bucket.
func (r *Record) Stats(now time.Time) (Stats, error) {
	work, brk, err := r.minutes(now.Hour()*60+now.Minute(), true)
	if err != nil {
		return Stats{}, err
	}
	return statsFromMinutes(work, brk), nil
}

// ClosedStats ignores any open segment; used for exports where only
// finalized spans count.
func (r *Record) ClosedStats() (Stats, error) {
	work, brk, err := r.minutes(0, false)
	if err != nil {
		return Stats{}, err
	}
	return statsFromMinutes(work, brk), nil
}

func statsFromMinutes(workMins, breakMins int) Stats {
	workHours := float64(workMins) / 60
	breakHours := float64(breakMins) / 60
	overtime := workHours - fullDayHours
	if overtime < 0 {
		overtime = 0
	}
	return Stats{
		WorkHours:       workHours,
		BreakHours:      breakHours,
		TotalLoginHours: float64(workMins+breakMins) / 60,
		OvertimeHours:   overtime,
	}
}

func (r *Record) minutes(nowMins int, includeOpen bool) (workMins, breakMins int, err error) {
	for _, seg := range r.Segments {
		start, err := ParseClock(seg.StartTime)
		if err != nil {
			return 0, 0, err
		}

		var end int
		switch {
		case seg.EndTime != nil:
			end, err = ParseClock(*seg.EndTime)
			if err != nil {
				return 0, 0, err
			}
		case includeOpen:
			end = nowMins
		default:
			continue
		}

		diff := end - start
		if diff < 0 {
			diff = 0
		}
		if seg.Type == SegmentWork {
			workMins += diff
		} else {
			breakMins += diff
		}
	}
	return workMins, breakMins, nil
}
