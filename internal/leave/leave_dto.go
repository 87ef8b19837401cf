package leave

type CreateLeaveRequest struct {
	Type      string `json:"type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type LeaveResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName,omitempty"`
	Type      string `json:"type"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
}

func mapToResponse(req Request, userName string) LeaveResponse {
	return LeaveResponse{
		ID:        req.ID,
		UserID:    req.UserID,
		UserName:  userName,
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    req.Status,
		Reason:    req.Reason,
	}
}
