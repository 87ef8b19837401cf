package calendar

type CreateEventRequest struct {
	Title string `json:"title" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Type  string `json:"type" binding:"required"`
}

type EventResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Type  string `json:"type"`
}

type DayView struct {
	Date   string          `json:"date"`
	Class  string          `json:"class"`
	Events []EventResponse `json:"events,omitempty"`
}

type MonthViewResponse struct {
	Month string    `json:"month"`
	Days  []DayView `json:"days"`
}

func mapToResponse(e Event) EventResponse {
	return EventResponse{ID: e.ID, Title: e.Title, Date: e.Date, Type: e.Type}
}
