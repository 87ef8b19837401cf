package attendance

type StateChangeRequest struct {
	Type string `json:"type" binding:"required"`
}

type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RecordResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	Date      string    `json:"date"`
	CheckIn   string    `json:"checkIn"`
	CheckOut  *string   `json:"checkOut,omitempty"`
	Status    string    `json:"status"`
	Segments  []Segment `json:"activityLogs"`
	WorkHours float64   `json:"workHours"`
}

// TodayResponse drives the punch card: the record (if any), the live state
// and stats measured against the request time.
type TodayResponse struct {
	Record *RecordResponse `json:"record,omitempty"`
	State  string          `json:"state"`
	Stats  Stats           `json:"stats"`
}

func mapToResponse(rec Record, userName string) RecordResponse {
	st, _ := rec.ClosedStats()
	return RecordResponse{
		ID:        rec.ID,
		UserID:    rec.UserID,
		UserName:  userName,
		Date:      rec.Date,
		CheckIn:   rec.CheckIn,
		CheckOut:  rec.CheckOut,
		Status:    rec.Status,
		Segments:  rec.Segments,
		WorkHours: st.WorkHours,
	}
}
