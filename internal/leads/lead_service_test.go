package leads

import (
	"context"
	"testing"

	"hr-panel/internal/domain"
	leaderrors "hr-panel/internal/leads/errors"
	"hr-panel/internal/user"

	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T, executives ...string) (Service, user.Repository) {
	t.Helper()
	users := user.NewMemoryRepository()
	ctx := context.Background()

	assert.NoError(t, users.Create(ctx, &user.User{
		ID: "u-manager", Name: "Manager", Email: "manager@test.local", Role: domain.RoleManager,
	}))
	for _, id := range executives {
		assert.NoError(t, users.Create(ctx, &user.User{
			ID: id, Name: id, Email: id + "@test.local", Role: domain.RoleExecutive,
		}))
	}
	return NewService(NewMemoryRepository(), users), users
}

func TestDistributeRoundRobin(t *testing.T) {
	svc, _ := setup(t, "exec-a", "exec-b")

	rows := []ParsedLead{
		{Name: "L1"}, {Name: "L2"}, {Name: "L3"}, {Name: "L4"}, {Name: "L5"},
	}
	resp, err := svc.Distribute(context.Background(), rows)
	assert.NoError(t, err)
	assert.Equal(t, 5, resp.Created)

	want := []string{"exec-a", "exec-b", "exec-a", "exec-b", "exec-a"}
	for i, l := range resp.Leads {
		assert.Equal(t, want[i], l.AssignedTo, "lead %d", i)
		assert.Equal(t, StatusNew, l.Status)
	}
}

func TestDistributeStartsFromFirstExecutiveEachBatch(t *testing.T) {
	svc, _ := setup(t, "exec-a", "exec-b")
	ctx := context.Background()

	first, err := svc.Distribute(ctx, []ParsedLead{{Name: "L1"}})
	assert.NoError(t, err)
	assert.Equal(t, "exec-a", first.Leads[0].AssignedTo)

	second, err := svc.Distribute(ctx, []ParsedLead{{Name: "L2"}})
	assert.NoError(t, err)
	assert.Equal(t, "exec-a", second.Leads[0].AssignedTo)
}

func TestDistributeErrors(t *testing.T) {
	withExecs, _ := setup(t, "exec-a")
	_, err := withExecs.Distribute(context.Background(), nil)
	assert.ErrorIs(t, err, leaderrors.ErrNoValidRows)

	noExecs, _ := setup(t)
	_, err = noExecs.Distribute(context.Background(), []ParsedLead{{Name: "L1"}})
	assert.ErrorIs(t, err, leaderrors.ErrNoExecutives)
}

func TestGetAllVisibility(t *testing.T) {
	svc, _ := setup(t, "exec-a", "exec-b")
	ctx := context.Background()

	_, err := svc.Distribute(ctx, []ParsedLead{{Name: "L1"}, {Name: "L2"}, {Name: "L3"}})
	assert.NoError(t, err)

	all, err := svc.GetAll(ctx, "u-manager", domain.RoleManager)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	own, err := svc.GetAll(ctx, "exec-b", domain.RoleExecutive)
	assert.NoError(t, err)
	assert.Len(t, own, 1)
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := setup(t, "exec-a", "exec-b")
	ctx := context.Background()

	resp, err := svc.Distribute(ctx, []ParsedLead{{Name: "L1"}})
	assert.NoError(t, err)
	id := resp.Leads[0].ID // assigned to exec-a

	_, err = svc.UpdateStatus(ctx, "exec-a", domain.RoleExecutive, id, "Hot")
	assert.ErrorIs(t, err, leaderrors.ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "exec-b", domain.RoleExecutive, id, StatusContacted)
	assert.ErrorIs(t, err, leaderrors.ErrUpdateForbidden)

	updated, err := svc.UpdateStatus(ctx, "exec-a", domain.RoleExecutive, id, StatusContacted)
	assert.NoError(t, err)
	assert.Equal(t, StatusContacted, updated.Status)

	converted, err := svc.UpdateStatus(ctx, "u-manager", domain.RoleManager, id, StatusConverted)
	assert.NoError(t, err)
	assert.Equal(t, StatusConverted, converted.Status)
}
