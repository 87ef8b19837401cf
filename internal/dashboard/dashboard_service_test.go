package dashboard

import (
	"context"
	"testing"
	"time"

	"hr-panel/internal/ai"
	"hr-panel/internal/attendance"
	"hr-panel/internal/domain"
	"hr-panel/internal/leads"
	"hr-panel/internal/leave"
	"hr-panel/internal/payroll"
	"hr-panel/internal/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummaryAggregates(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	users := user.NewMemoryRepository()
	for _, u := range []*user.User{
		{ID: "u-mgr", Name: "Mgr", Email: "mgr@test.local", Role: domain.RoleManager},
		{ID: "u-a", Name: "A", Email: "a@test.local", Role: domain.RoleExecutive},
		{ID: "u-b", Name: "B", Email: "b@test.local", Role: domain.RoleExecutive},
	} {
		assert.NoError(t, users.Create(ctx, u))
	}

	records := attendance.NewMemoryRepository()
	assert.NoError(t, records.Create(ctx, attendance.NewRecord("u-a", now)))

	leaveRepo := leave.NewMemoryRepository()
	assert.NoError(t, leaveRepo.Create(ctx, &leave.Request{
		ID: "l1", UserID: "u-b", Type: leave.TypeSick,
		StartDate: "2026-03-01", EndDate: "2026-03-03",
		Status: leave.StatusApproved, Reason: "flu",
	}))
	assert.NoError(t, leaveRepo.Create(ctx, &leave.Request{
		ID: "l2", UserID: "u-a", Type: leave.TypeVacation,
		StartDate: "2026-04-01", EndDate: "2026-04-02",
		Status: leave.StatusPending, Reason: "trip",
	}))

	leadRepo := leads.NewMemoryRepository()
	assert.NoError(t, leadRepo.CreateBatch(ctx, []leads.Lead{
		{ID: "lead1", Name: "L1", Status: leads.StatusNew, AssignedTo: "u-a"},
		{ID: "lead2", Name: "L2", Status: leads.StatusLost, AssignedTo: "u-b"},
	}))

	payrollRepo := payroll.NewMemoryRepository()
	assert.NoError(t, payrollRepo.Upsert(ctx, &payroll.Entry{
		ID: "p1", UserID: "u-a", Month: "2026-03",
		NetSalary: decimal.RequireFromString("45000"),
	}))
	assert.NoError(t, payrollRepo.Upsert(ctx, &payroll.Entry{
		ID: "p2", UserID: "u-b", Month: "2026-02",
		NetSalary: decimal.RequireFromString("99999"),
	}))

	svc := NewService(users, records, leaveRepo, leadRepo, payrollRepo, ai.NewClient())

	got, err := svc.Summary(ctx, "u-mgr", domain.RoleManager, now)
	assert.NoError(t, err)
	assert.Equal(t, 3, got.TotalEmployees)
	assert.Equal(t, 1, got.PresentToday)
	assert.Equal(t, 1, got.OnLeaveToday)
	assert.Equal(t, 1, got.PendingLeaves)
	assert.Equal(t, 1, got.OpenLeads)
	assert.Equal(t, "45000.00", got.PayrollTotal)
	assert.Equal(t, "AI Insights unavailable (No API Key).", got.Insight)
}

func TestSummaryScopedForNonManagement(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	users := user.NewMemoryRepository()
	assert.NoError(t, users.Create(ctx, &user.User{
		ID: "u-a", Name: "A", Email: "a@test.local", Role: domain.RoleExecutive,
	}))

	payrollRepo := payroll.NewMemoryRepository()
	assert.NoError(t, payrollRepo.Upsert(ctx, &payroll.Entry{
		ID: "p1", UserID: "u-a", Month: "2026-03",
		NetSalary: decimal.RequireFromString("40000"),
	}))
	assert.NoError(t, payrollRepo.Upsert(ctx, &payroll.Entry{
		ID: "p2", UserID: "u-other", Month: "2026-03",
		NetSalary: decimal.RequireFromString("70000"),
	}))

	svc := NewService(
		users,
		attendance.NewMemoryRepository(),
		leave.NewMemoryRepository(),
		leads.NewMemoryRepository(),
		payrollRepo,
		ai.NewClient(),
	)

	got, err := svc.Summary(ctx, "u-a", domain.RoleExecutive, now)
	assert.NoError(t, err)
	assert.Equal(t, 0, got.TotalEmployees)
	assert.Equal(t, "40000.00", got.PayrollTotal)
	assert.Empty(t, got.Insight)
}
