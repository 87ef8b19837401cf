package leave

import (
	"context"
	"testing"

	"hr-panel/internal/domain"
	leaveerrors "hr-panel/internal/leave/errors"
	"hr-panel/internal/user"

	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) (Service, Repository, user.Repository) {
	t.Helper()
	users := user.NewMemoryRepository()
	for _, u := range []*user.User{
		{ID: "u-exec", Name: "Exec", Email: "exec@test.local", Role: domain.RoleExecutive},
		{ID: "u-hr", Name: "HR", Email: "hr@test.local", Role: domain.RoleHR},
	} {
		assert.NoError(t, users.Create(context.Background(), u))
	}
	repo := NewMemoryRepository()
	return NewService(repo, users), repo, users
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u-exec", CreateLeaveRequest{
		Type: "Sabbatical", StartDate: "2026-04-01", EndDate: "2026-04-02", Reason: "trip",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidType)

	_, err = svc.Create(ctx, "u-exec", CreateLeaveRequest{
		Type: TypeVacation, StartDate: "2026-04-05", EndDate: "2026-04-01", Reason: "trip",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)

	_, err = svc.Create(ctx, "u-exec", CreateLeaveRequest{
		Type: TypeVacation, StartDate: "04/01/2026", EndDate: "2026-04-02", Reason: "trip",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)

	_, err = svc.Create(ctx, "u-exec", CreateLeaveRequest{
		Type: TypeSick, StartDate: "2026-04-01", EndDate: "2026-04-02", Reason: "   ",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrReasonRequired)

	resp, err := svc.Create(ctx, "u-exec", CreateLeaveRequest{
		Type: TypeSick, StartDate: "2026-04-01", EndDate: "2026-04-02", Reason: "flu",
	})
	assert.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, "Exec", resp.UserName)
}

func TestDecisionIsTerminal(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u-exec", CreateLeaveRequest{
		Type: TypeVacation, StartDate: "2026-04-01", EndDate: "2026-04-03", Reason: "trip",
	})
	assert.NoError(t, err)

	approved, err := svc.Approve(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, approved.Status)

	_, err = svc.Reject(ctx, created.ID)
	assert.ErrorIs(t, err, leaveerrors.ErrAlreadyDecided)
	_, err = svc.Approve(ctx, created.ID)
	assert.ErrorIs(t, err, leaveerrors.ErrAlreadyDecided)
}

func TestGetAllVisibility(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u-exec", CreateLeaveRequest{
		Type: TypeSick, StartDate: "2026-04-01", EndDate: "2026-04-01", Reason: "flu",
	})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, "u-hr", CreateLeaveRequest{
		Type: TypePersonal, StartDate: "2026-04-02", EndDate: "2026-04-02", Reason: "errand",
	})
	assert.NoError(t, err)

	own, err := svc.GetAll(ctx, "u-exec", domain.RoleExecutive)
	assert.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := svc.GetAll(ctx, "u-hr", domain.RoleHR)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOnApprovedLeave(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u-exec", CreateLeaveRequest{
		Type: TypeVacation, StartDate: "2026-04-01", EndDate: "2026-04-03", Reason: "trip",
	})
	assert.NoError(t, err)

	assert.False(t, svc.OnApprovedLeave(ctx, "u-exec", "2026-04-02"))

	_, err = svc.Approve(ctx, created.ID)
	assert.NoError(t, err)

	assert.True(t, svc.OnApprovedLeave(ctx, "u-exec", "2026-04-02"))
	assert.False(t, svc.OnApprovedLeave(ctx, "u-exec", "2026-04-04"))
	assert.False(t, svc.OnApprovedLeave(ctx, "u-hr", "2026-04-02"))
}
