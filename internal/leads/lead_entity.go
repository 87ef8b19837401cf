package leads

const (
	StatusNew        = "New"
	StatusContacted  = "Contacted"
	StatusInProgress = "In Progress"
	StatusConverted  = "Converted"
	StatusLost       = "Lost"
)

type Lead struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Status     string
	AssignedTo string
	CreatedAt  string
}

func validStatus(s string) bool {
	switch s {
	case StatusNew, StatusContacted, StatusInProgress, StatusConverted, StatusLost:
		return true
	}
	return false
}
