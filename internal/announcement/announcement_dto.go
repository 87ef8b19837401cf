package announcement

type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Priority string `json:"priority"`
}

type GenerateAnnouncementRequest struct {
	Topic string `json:"topic" binding:"required"`
	Tone  string `json:"tone" binding:"required"`
}

type AnnouncementResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Date       string `json:"date"`
	Priority   string `json:"priority"`
}

type GeneratedContentResponse struct {
	Content string `json:"content"`
}

func mapToResponse(a Announcement, authorName string) AnnouncementResponse {
	return AnnouncementResponse{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		AuthorID:   a.AuthorID,
		AuthorName: authorName,
		Date:       a.Date,
		Priority:   a.Priority,
	}
}
