package user

import (
	"context"
	"testing"

	"hr-panel/internal/domain"
	usererrors "hr-panel/internal/user/errors"

	"github.com/stretchr/testify/assert"
)

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error)    { return "hashed:" + p, nil }
func (plainHasher) Compare(hash, plain string) error { return nil }

func seedUser(t *testing.T, repo Repository, name string, role domain.Role) *User {
	t.Helper()
	u := &User{ID: "id-" + name, Name: name, Email: name + "@test.local", Role: role}
	assert.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestCreateRespectsManagementMatrix(t *testing.T) {
	cases := []struct {
		name    string
		actor   domain.Role
		target  string
		wantErr error
	}{
		{"ceo creates admin", domain.RoleCEO, "Admin", nil},
		{"admin creates hr", domain.RoleAdmin, "HR", nil},
		{"admin creates ceo", domain.RoleAdmin, "CEO", usererrors.ErrManageForbidden},
		{"hr creates executive", domain.RoleHR, "Executive", nil},
		{"hr creates admin", domain.RoleHR, "Admin", usererrors.ErrManageForbidden},
		{"executive creates executive", domain.RoleExecutive, "Executive", usererrors.ErrManageForbidden},
		{"unknown role", domain.RoleCEO, "Overlord", usererrors.ErrInvalidRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(NewMemoryRepository(), plainHasher{})
			_, err := svc.Create(context.Background(), tc.actor, CreateUserRequest{
				Name:  "New Person",
				Email: "new@test.local",
				Role:  tc.target,
			})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHRCannotAssignHREvenThoughHRManagesNobodyAboveIt(t *testing.T) {
	// HR manages {Manager, TL, Executive} but the assignment dropdown also
	// hides CEO/Admin/HR from an HR actor.
	svc := NewService(NewMemoryRepository(), plainHasher{})
	_, err := svc.Create(context.Background(), domain.RoleHR, CreateUserRequest{
		Name: "X", Email: "x@test.local", Role: "HR",
	})
	assert.Error(t, err)
}

func TestCreateWithoutPasswordKeepsDefaultCredential(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, plainHasher{})

	resp, err := svc.Create(context.Background(), domain.RoleCEO, CreateUserRequest{
		Name: "NoPass", Email: "nopass@test.local", Role: "Executive",
	})
	assert.NoError(t, err)

	u, err := repo.FindByID(context.Background(), resp.ID)
	assert.NoError(t, err)
	assert.Empty(t, u.PasswordHash)
}

func TestDeleteLastCEOBlockedForEveryActor(t *testing.T) {
	repo := NewMemoryRepository()
	ceo := seedUser(t, repo, "ceo", domain.RoleCEO)
	svc := NewService(repo, plainHasher{})

	err := svc.Delete(context.Background(), domain.RoleCEO, ceo.ID)
	assert.ErrorIs(t, err, usererrors.ErrLastCEO)
}

func TestDeleteCEOAllowedWhenAnotherExists(t *testing.T) {
	repo := NewMemoryRepository()
	first := seedUser(t, repo, "ceo1", domain.RoleCEO)
	seedUser(t, repo, "ceo2", domain.RoleCEO)
	svc := NewService(repo, plainHasher{})

	assert.NoError(t, svc.Delete(context.Background(), domain.RoleCEO, first.ID))
}

func TestAdminCannotDeleteCEO(t *testing.T) {
	repo := NewMemoryRepository()
	ceo := seedUser(t, repo, "ceo", domain.RoleCEO)
	seedUser(t, repo, "spare", domain.RoleCEO)
	svc := NewService(repo, plainHasher{})

	err := svc.Delete(context.Background(), domain.RoleAdmin, ceo.ID)
	assert.ErrorIs(t, err, usererrors.ErrManageForbidden)
}

func TestDemotingLastCEOBlocked(t *testing.T) {
	repo := NewMemoryRepository()
	ceo := seedUser(t, repo, "ceo", domain.RoleCEO)
	svc := NewService(repo, plainHasher{})

	_, err := svc.Update(context.Background(), domain.RoleCEO, ceo.ID, UpdateUserRequest{
		Name: "ceo", Email: "ceo@test.local", Role: "Manager",
	})
	assert.ErrorIs(t, err, usererrors.ErrLastCEO)
}

func TestProfileEditDisabledForLowerRoles(t *testing.T) {
	repo := NewMemoryRepository()
	exec := seedUser(t, repo, "exec", domain.RoleExecutive)
	tl := seedUser(t, repo, "tl", domain.RoleTeamLeader)
	hr := seedUser(t, repo, "hr", domain.RoleHR)
	svc := NewService(repo, plainHasher{})
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, exec.ID, domain.RoleExecutive, UpdateProfileRequest{Name: "New"})
	assert.ErrorIs(t, err, usererrors.ErrProfileEditForbidden)

	_, err = svc.UpdateProfile(ctx, tl.ID, domain.RoleTeamLeader, UpdateProfileRequest{Name: "New"})
	assert.ErrorIs(t, err, usererrors.ErrProfileEditForbidden)

	resp, err := svc.UpdateProfile(ctx, hr.ID, domain.RoleHR, UpdateProfileRequest{Name: "Renamed"})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", resp.Name)
}

func TestResetPasswordStoresNewHash(t *testing.T) {
	repo := NewMemoryRepository()
	exec := seedUser(t, repo, "exec", domain.RoleExecutive)
	svc := NewService(repo, plainHasher{})

	assert.NoError(t, svc.ResetPassword(context.Background(), domain.RoleHR, exec.ID, ResetPasswordRequest{Password: "newpass"}))

	u, err := repo.FindByID(context.Background(), exec.ID)
	assert.NoError(t, err)
	assert.Equal(t, "hashed:newpass", u.PasswordHash)
}

func TestDuplicateEmailRejected(t *testing.T) {
	repo := NewMemoryRepository()
	seedUser(t, repo, "dup", domain.RoleExecutive)
	svc := NewService(repo, plainHasher{})

	_, err := svc.Create(context.Background(), domain.RoleCEO, CreateUserRequest{
		Name: "Other", Email: "dup@test.local", Role: "Executive",
	})
	assert.ErrorIs(t, err, usererrors.ErrEmailTaken)
}
