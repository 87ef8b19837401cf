package attendance

import "time"

// DayClass is the derived classification of one calendar day for a user,
// used by the calendar month view.
type DayClass string

const (
	DayHoliday DayClass = "holiday"
	DayLeave   DayClass = "leave"
	DayWork    DayClass = "work"
	DayHalfDay DayClass = "half-day"
	DayLate    DayClass = "late"
	DayAbsent  DayClass = "absent"
	DayWeekend DayClass = "weekend"
	DayFuture  DayClass = "future"
)

// ClassifyDay derives a day's class in precedence order: holiday, approved
// leave, the attendance record's status, weekend, then past-without-record
// (Absent). The current day and future days without a record stay "future".
func ClassifyDay(date, today time.Time, isHoliday, onApprovedLeave bool, rec *Record) DayClass {
	if isHoliday {
		return DayHoliday
	}
	if onApprovedLeave {
		return DayLeave
	}
	if rec != nil {
		switch rec.Status {
		case StatusHalfDay:
			return DayHalfDay
		case StatusAbsent:
			return DayAbsent
		case StatusLate:
			return DayLate
		default:
			return DayWork
		}
	}

	wd := date.Weekday()
	if wd == time.Sunday || wd == time.Saturday {
		return DayWeekend
	}

	d := date.Format("2006-01-02")
	t := today.Format("2006-01-02")
	if d < t {
		return DayAbsent
	}
	return DayFuture
}
