package announcement

import (
	"context"
	"testing"

	"hr-panel/internal/ai"
	announcementerrors "hr-panel/internal/announcement/errors"
	"hr-panel/internal/domain"
	"hr-panel/internal/user"

	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) Service {
	t.Helper()
	users := user.NewMemoryRepository()
	assert.NoError(t, users.Create(context.Background(), &user.User{
		ID: "u-ceo", Name: "Boss", Email: "boss@test.local", Role: domain.RoleCEO,
	}))
	return NewService(NewMemoryRepository(), users, ai.NewClient())
}

func TestCreateAndListNewestFirst(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u-ceo", CreateAnnouncementRequest{Title: "First", Content: "a"})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, "u-ceo", CreateAnnouncementRequest{Title: "Second", Content: "b"})
	assert.NoError(t, err)

	all, err := svc.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Second", all[0].Title)
	assert.Equal(t, "Boss", all[0].AuthorName)
}

func TestCreateValidation(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u-ceo", CreateAnnouncementRequest{Title: " ", Content: "body"})
	assert.ErrorIs(t, err, announcementerrors.ErrTitleRequired)

	_, err = svc.Create(ctx, "u-ceo", CreateAnnouncementRequest{Title: "Hi", Content: " "})
	assert.ErrorIs(t, err, announcementerrors.ErrContentRequired)

	_, err = svc.Create(ctx, "u-ceo", CreateAnnouncementRequest{Title: "Hi", Content: "body", Priority: "Critical"})
	assert.ErrorIs(t, err, announcementerrors.ErrInvalidPriority)

	resp, err := svc.Create(ctx, "u-ceo", CreateAnnouncementRequest{Title: "Hi", Content: "body"})
	assert.NoError(t, err)
	assert.Equal(t, PriorityNormal, resp.Priority)
}

func TestDeleteMissing(t *testing.T) {
	svc := setup(t)
	err := svc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, announcementerrors.ErrNotFound)
}

func TestGenerateValidation(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.Generate(ctx, GenerateAnnouncementRequest{Topic: " ", Tone: ToneFormal})
	assert.ErrorIs(t, err, announcementerrors.ErrTopicRequired)

	_, err = svc.Generate(ctx, GenerateAnnouncementRequest{Topic: "offsite", Tone: "Sarcastic"})
	assert.ErrorIs(t, err, announcementerrors.ErrInvalidTone)

	// no API key configured in tests, so the canned fallback comes back
	resp, err := svc.Generate(ctx, GenerateAnnouncementRequest{Topic: "offsite", Tone: ToneExcited})
	assert.NoError(t, err)
	assert.Equal(t, "Error: API Key missing.", resp.Content)
}
