package attendance

import (
	"context"
	"strings"
	"testing"
	"time"

	"hr-panel/internal/domain"
	"hr-panel/internal/user"

	"github.com/stretchr/testify/assert"
)

func serviceSetup(t *testing.T) Service {
	t.Helper()
	ctx := context.Background()

	users := user.NewMemoryRepository()
	for _, u := range []*user.User{
		{ID: "u-hr", Name: "Priya", Email: "priya@test.local", Role: domain.RoleHR},
		{ID: "u-exec", Name: "Sana", Email: "sana@test.local", Role: domain.RoleExecutive},
		{ID: "u-other", Name: "Rohan", Email: "rohan@test.local", Role: domain.RoleExecutive},
	} {
		assert.NoError(t, users.Create(ctx, u))
	}
	return NewService(NewMemoryRepository(), users)
}

func TestGetAllVisibility(t *testing.T) {
	svc := serviceSetup(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	_, err := svc.PunchIn(ctx, "u-exec", now)
	assert.NoError(t, err)
	_, err = svc.PunchIn(ctx, "u-other", now)
	assert.NoError(t, err)

	own, err := svc.GetAll(ctx, "u-exec", domain.RoleExecutive)
	assert.NoError(t, err)
	assert.Len(t, own, 1)
	assert.Equal(t, "u-exec", own[0].UserID)
	assert.Equal(t, "Sana", own[0].UserName)

	all, err := svc.GetAll(ctx, "u-hr", domain.RoleHR)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestExportCSVScopedToActor(t *testing.T) {
	svc := serviceSetup(t)
	ctx := context.Background()
	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	out := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)

	for _, id := range []string{"u-exec", "u-other"} {
		_, err := svc.PunchIn(ctx, id, in)
		assert.NoError(t, err)
		_, err = svc.PunchOut(ctx, id, out)
		assert.NoError(t, err)
	}

	data, filename, err := svc.ExportCSV(ctx, "u-exec", domain.RoleExecutive, out)
	assert.NoError(t, err)
	assert.Equal(t, "Attendance_Report_2026-03-02.csv", filename)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2) // header plus the actor's own row
	assert.Contains(t, lines[1], "Sana")
	assert.NotContains(t, string(data), "Rohan")

	data, _, err = svc.ExportCSV(ctx, "u-hr", domain.RoleHR, out)
	assert.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
}
