package leads

type DistributeTextRequest struct {
	Text string `json:"text" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LeadResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Status       string `json:"status"`
	AssignedTo   string `json:"assignedTo"`
	AssigneeName string `json:"assigneeName"`
	CreatedAt    string `json:"createdAt"`
}

type DistributionResponse struct {
	Created int            `json:"created"`
	Leads   []LeadResponse `json:"leads"`
}

func mapToResponse(l Lead, assigneeName string) LeadResponse {
	return LeadResponse{
		ID:           l.ID,
		Name:         l.Name,
		Email:        l.Email,
		Phone:        l.Phone,
		Status:       l.Status,
		AssignedTo:   l.AssignedTo,
		AssigneeName: assigneeName,
		CreatedAt:    l.CreatedAt,
	}
}
