package calendar

const (
	EventMeeting  = "Meeting"
	EventHoliday  = "Holiday"
	EventDeadline = "Deadline"
)

type Event struct {
	ID    string
	Title string
	Date  string
	Type  string
}

func validEventType(t string) bool {
	switch t {
	case EventMeeting, EventHoliday, EventDeadline:
		return true
	}
	return false
}
