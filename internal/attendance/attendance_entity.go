package attendance

// Segment types. Everything that is not Work accumulates into the break
// bucket when hours are computed.
const (
	SegmentWork       = "Work"
	SegmentBioBreak   = "Bio Break"
	SegmentLunchBreak = "Lunch Break"
	SegmentMeeting    = "Meeting"
)

// Record statuses. "Late" is never derived by the engine; it exists only
// for the manual management override.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
	StatusHalfDay = "Half-Day"
)

// Segment is one typed span of a work day. EndTime nil means the segment
// is still open.
type Segment struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	StartTime string  `json:"startTime"` // HH:MM
	EndTime   *string `json:"endTime,omitempty"`
}

// Record is one user's attendance for one calendar day. Segments are
// append-only and ordered; at most one is open at any time. Once CheckOut
// is set the record is terminal.
type Record struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Date     string    `json:"date"` // YYYY-MM-DD
	CheckIn  string    `json:"checkIn"`
	CheckOut *string   `json:"checkOut,omitempty"`
	Status   string    `json:"status"`
	Segments []Segment `json:"activityLogs"`
}

func (r *Record) Completed() bool {
	return r.CheckOut != nil
}

// OpenSegment returns a pointer into Segments for the open segment, or nil.
func (r *Record) OpenSegment() *Segment {
	if len(r.Segments) == 0 {
		return nil
	}
	last := &r.Segments[len(r.Segments)-1]
	if last.EndTime == nil {
		return last
	}
	return nil
}

// CurrentState reports what the user is doing right now: the open
// segment's type, "Completed" after punch-out, or "Idle" when every
// segment is closed but the day is not.
func (r *Record) CurrentState() string {
	if r.Completed() {
		return "Completed"
	}
	if open := r.OpenSegment(); open != nil {
		return open.Type
	}
	if len(r.Segments) == 0 {
		return SegmentWork
	}
	return "Idle"
}

func validSegmentType(t string) bool {
	switch t {
	case SegmentWork, SegmentBioBreak, SegmentLunchBreak, SegmentMeeting:
		return true
	}
	return false
}

func validOverrideStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay:
		return true
	}
	return false
}
