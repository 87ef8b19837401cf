package announcement

// Announcement tones offered to the AI drafting assistant.
const (
	ToneFormal  = "Formal"
	ToneExcited = "Excited"
	ToneUrgent  = "Urgent"
	ToneCasual  = "Casual"
)

const (
	PriorityHigh   = "High"
	PriorityNormal = "Normal"
	PriorityLow    = "Low"
)

type Announcement struct {
	ID       string
	Title    string
	Content  string
	AuthorID string
	Date     string
	Priority string
}

func validPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

func validTone(t string) bool {
	switch t {
	case ToneFormal, ToneExcited, ToneUrgent, ToneCasual:
		return true
	}
	return false
}
