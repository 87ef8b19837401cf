package dashboard

import (
	"context"
	"fmt"
	"time"

	"hr-panel/internal/ai"
	"hr-panel/internal/attendance"
	"hr-panel/internal/domain"
	"hr-panel/internal/leads"
	"hr-panel/internal/leave"
	"hr-panel/internal/payroll"
	"hr-panel/internal/rbac"
	"hr-panel/internal/user"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SummaryResponse struct {
	TotalEmployees int            `json:"totalEmployees"`
	RoleCounts     map[string]int `json:"roleCounts"`
	PresentToday   int            `json:"presentToday"`
	OnLeaveToday   int            `json:"onLeaveToday"`
	PendingLeaves  int            `json:"pendingLeaves"`
	OpenLeads      int            `json:"openLeads"`
	PayrollTotal   string         `json:"payrollTotal"`
	Insight        string         `json:"insight"`
}

type Service interface {
	Summary(ctx context.Context, actorID string, actorRole domain.Role, now time.Time) (SummaryResponse, error)
}

type service struct {
	users      user.Repository
	attendance attendance.Repository
	leaves     leave.Repository
	leadRepo   leads.Repository
	payrolls   payroll.Repository
	ai         *ai.Client
	logger     *zap.Logger
}

func NewService(
	users user.Repository,
	att attendance.Repository,
	leaves leave.Repository,
	leadRepo leads.Repository,
	payrolls payroll.Repository,
	aiClient *ai.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		users:      users,
		attendance: att,
		leaves:     leaves,
		leadRepo:   leadRepo,
		payrolls:   payrolls,
		ai:         aiClient,
		logger:     l,
	}
}

// Summary builds the management dashboard numbers. Non-management callers
// get the same shape scoped to their own records, without the AI insight.
func (s *service) Summary(ctx context.Context, actorID string, actorRole domain.Role, now time.Time) (SummaryResponse, error) {
	today := now.Format("2006-01-02")
	resp := SummaryResponse{RoleCounts: make(map[string]int)}

	month := now.Format("2006-01")
	if !rbac.IsManagement(actorRole) {
		return s.ownSummary(ctx, actorID, today, month)
	}

	all, err := s.users.FindAll(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}
	resp.TotalEmployees = len(all)
	for _, u := range all {
		resp.RoleCounts[string(u.Role)]++
	}

	records, err := s.attendance.FindAll(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}
	for _, rec := range records {
		if rec.Date == today && rec.Status != attendance.StatusAbsent {
			resp.PresentToday++
		}
	}

	requests, err := s.leaves.FindAll(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}
	for _, req := range requests {
		switch {
		case req.Status == leave.StatusPending:
			resp.PendingLeaves++
		case req.Status == leave.StatusApproved && req.StartDate <= today && today <= req.EndDate:
			resp.OnLeaveToday++
		}
	}

	allLeads, err := s.leadRepo.FindAll(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}
	for _, l := range allLeads {
		if l.Status != leads.StatusConverted && l.Status != leads.StatusLost {
			resp.OpenLeads++
		}
	}

	entries, err := s.payrolls.FindAll(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}
	resp.PayrollTotal = monthTotal(entries, month)

	resp.Insight = s.ai.DashboardInsights(ctx, fmt.Sprintf(
		"%d employees, %d present today, %d on leave, %d pending leave requests, %d open leads, %s monthly payroll",
		resp.TotalEmployees, resp.PresentToday, resp.OnLeaveToday, resp.PendingLeaves, resp.OpenLeads, resp.PayrollTotal,
	))
	return resp, nil
}

func monthTotal(entries []payroll.Entry, month string) string {
	total := decimal.Zero
	for _, e := range entries {
		if e.Month == month {
			total = total.Add(e.NetSalary)
		}
	}
	return total.StringFixed(2)
}

func (s *service) ownSummary(ctx context.Context, actorID, today, month string) (SummaryResponse, error) {
	resp := SummaryResponse{RoleCounts: make(map[string]int)}

	rec, err := s.attendance.FindByUserAndDate(ctx, actorID, today)
	if err == nil && rec.Status != attendance.StatusAbsent {
		resp.PresentToday = 1
	}

	requests, err := s.leaves.FindAllByUser(ctx, actorID)
	if err != nil {
		return SummaryResponse{}, err
	}
	for _, req := range requests {
		switch {
		case req.Status == leave.StatusPending:
			resp.PendingLeaves++
		case req.Status == leave.StatusApproved && req.StartDate <= today && today <= req.EndDate:
			resp.OnLeaveToday++
		}
	}

	assigned, err := s.leadRepo.FindAllByAssignee(ctx, actorID)
	if err != nil {
		return SummaryResponse{}, err
	}
	for _, l := range assigned {
		if l.Status != leads.StatusConverted && l.Status != leads.StatusLost {
			resp.OpenLeads++
		}
	}

	own, err := s.payrolls.FindAllByUser(ctx, actorID)
	if err != nil {
		return SummaryResponse{}, err
	}
	resp.PayrollTotal = monthTotal(own, month)
	return resp, nil
}
