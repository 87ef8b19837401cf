package leave

const (
	TypeSick     = "Sick"
	TypeVacation = "Vacation"
	TypePersonal = "Personal"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Request is a leave application. Once the status leaves Pending it is
// terminal.
type Request struct {
	ID        string
	UserID    string
	Type      string
	StartDate string // YYYY-MM-DD
	EndDate   string
	Status    string
	Reason    string
}

func validType(t string) bool {
	switch t {
	case TypeSick, TypeVacation, TypePersonal:
		return true
	}
	return false
}
