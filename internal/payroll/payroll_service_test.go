package payroll

import (
	"context"
	"testing"

	"hr-panel/internal/domain"
	payrollerrors "hr-panel/internal/payroll/errors"
	"hr-panel/internal/user"

	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) (Service, Repository) {
	t.Helper()
	users := user.NewMemoryRepository()
	for _, u := range []*user.User{
		{ID: "u-ceo", Name: "Boss", Email: "boss@test.local", Role: domain.RoleCEO},
		{ID: "u-exec", Name: "Exec", Email: "exec@test.local", Role: domain.RoleExecutive, Department: "Sales"},
	} {
		assert.NoError(t, users.Create(context.Background(), u))
	}
	repo := NewMemoryRepository()
	return NewService(repo, users), repo
}

func TestUpsertComputesNet(t *testing.T) {
	svc, _ := setup(t)

	resp, err := svc.Upsert(context.Background(), UpsertEntryRequest{
		UserID:     "u-exec",
		Month:      "2026-03",
		BaseSalary: "50000",
		Bonus:      "5000",
		Deductions: "1200.50",
	})
	assert.NoError(t, err)
	assert.Equal(t, "53799.50", resp.NetSalary)
	assert.Equal(t, StatusProcessing, resp.Status)
}

func TestUpsertOverwriteKeepsEntryID(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, UpsertEntryRequest{
		UserID: "u-exec", Month: "2026-03", BaseSalary: "50000",
	})
	assert.NoError(t, err)

	second, err := svc.Upsert(ctx, UpsertEntryRequest{
		UserID: "u-exec", Month: "2026-03", BaseSalary: "60000",
	})
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "60000.00", second.BaseSalary)
}

func TestUpsertValidation(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, UpsertEntryRequest{UserID: "u-exec", Month: "March 2026", BaseSalary: "50000"})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)

	_, err = svc.Upsert(ctx, UpsertEntryRequest{UserID: "u-exec", Month: "2026-03", BaseSalary: "-1"})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidAmount)

	_, err = svc.Upsert(ctx, UpsertEntryRequest{UserID: "u-ghost", Month: "2026-03", BaseSalary: "50000"})
	assert.ErrorIs(t, err, payrollerrors.ErrUserNotFound)

	_, err = svc.Upsert(ctx, UpsertEntryRequest{UserID: "u-ceo", Month: "2026-03", BaseSalary: "50000"})
	assert.ErrorIs(t, err, payrollerrors.ErrCEONotPayrolled)
}

func TestGetAllVisibility(t *testing.T) {
	users := user.NewMemoryRepository()
	for _, u := range []*user.User{
		{ID: "u-a", Name: "A", Email: "a@test.local", Role: domain.RoleExecutive},
		{ID: "u-b", Name: "B", Email: "b@test.local", Role: domain.RoleExecutive},
	} {
		assert.NoError(t, users.Create(context.Background(), u))
	}
	svc := NewService(NewMemoryRepository(), users)
	ctx := context.Background()

	for _, id := range []string{"u-a", "u-b"} {
		_, err := svc.Upsert(ctx, UpsertEntryRequest{UserID: id, Month: "2026-03", BaseSalary: "40000"})
		assert.NoError(t, err)
	}

	own, err := svc.GetAll(ctx, "u-a", domain.RoleExecutive)
	assert.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := svc.GetAll(ctx, "u-a", domain.RoleManager)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPayslipRendersHTMLAndGuardsOwnership(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	entry, err := svc.Upsert(ctx, UpsertEntryRequest{
		UserID: "u-exec", Month: "2026-03", BaseSalary: "50000", Bonus: "1000",
	})
	assert.NoError(t, err)

	slip, err := svc.Payslip(ctx, "u-exec", domain.RoleExecutive, entry.ID)
	assert.NoError(t, err)
	assert.Contains(t, slip.ContentType, "text/html")
	assert.Contains(t, string(slip.Content), "Exec")
	assert.Contains(t, string(slip.Content), "51000.00")

	_, err = svc.Payslip(ctx, "u-someone-else", domain.RoleExecutive, entry.ID)
	assert.ErrorIs(t, err, payrollerrors.ErrSlipNotAvailable)

	_, err = svc.Payslip(ctx, "u-manager", domain.RoleManager, entry.ID)
	assert.NoError(t, err)
}

func TestPayslipServesUploadedDocument(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	entry, err := svc.Upsert(ctx, UpsertEntryRequest{
		UserID:     "u-exec",
		Month:      "2026-03",
		BaseSalary: "50000",
		CustomSlip: "aGVsbG8=",
		FileName:   "march.pdf",
	})
	assert.NoError(t, err)

	slip, err := svc.Payslip(ctx, "u-exec", domain.RoleExecutive, entry.ID)
	assert.NoError(t, err)
	assert.Equal(t, "march.pdf", slip.FileName)
	assert.Equal(t, []byte("hello"), slip.Content)
}
