package chat

import (
	"context"
	"testing"

	chaterrors "hr-panel/internal/chat/errors"
	"hr-panel/internal/domain"
	"hr-panel/internal/user"

	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) (Service, user.Repository) {
	t.Helper()
	users := user.NewMemoryRepository()
	ctx := context.Background()
	for _, u := range []*user.User{
		{ID: "u-ceo", Name: "Boss", Email: "boss@test.local", Role: domain.RoleCEO},
		{ID: "u-manager", Name: "Mgr", Email: "mgr@test.local", Role: domain.RoleManager},
		{ID: "u-admin", Name: "Adm", Email: "adm@test.local", Role: domain.RoleAdmin},
		{ID: "u-hr", Name: "HR", Email: "hr@test.local", Role: domain.RoleHR},
		{ID: "u-exec", Name: "Exec", Email: "exec@test.local", Role: domain.RoleExecutive},
	} {
		assert.NoError(t, users.Create(ctx, u))
	}
	return NewService(NewMemoryGroupRepository(), NewMemoryMessageRepository(), users), users
}

func mkGroup(t *testing.T, svc Service, creatorID string, members ...string) GroupResponse {
	t.Helper()
	g, err := svc.CreateGroup(context.Background(), creatorID, CreateGroupRequest{
		Name:    "Sales Floor",
		Members: members,
	})
	assert.NoError(t, err)
	return g
}

func TestCreateGroupValidation(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.CreateGroup(ctx, "u-hr", CreateGroupRequest{Name: "  ", Members: []string{"u-exec"}})
	assert.ErrorIs(t, err, chaterrors.ErrNameRequired)

	_, err = svc.CreateGroup(ctx, "u-hr", CreateGroupRequest{Name: "Solo", Members: []string{"u-hr"}})
	assert.ErrorIs(t, err, chaterrors.ErrMembersRequired)

	g, err := svc.CreateGroup(ctx, "u-hr", CreateGroupRequest{Name: "Team", Members: []string{"u-exec", "u-exec"}})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"u-hr", "u-exec"}, g.Members)
}

func TestDeleteGroupPermissions(t *testing.T) {
	svc, users := setup(t)
	ctx := context.Background()

	// top tier deletes anything
	g := mkGroup(t, svc, "u-hr", "u-exec")
	assert.NoError(t, svc.DeleteGroup(ctx, "u-ceo", domain.RoleCEO, g.ID))

	// creator deletes own group
	g = mkGroup(t, svc, "u-exec", "u-hr")
	assert.NoError(t, svc.DeleteGroup(ctx, "u-exec", domain.RoleExecutive, g.ID))

	// unrelated low-rank member cannot
	g = mkGroup(t, svc, "u-hr", "u-exec")
	err := svc.DeleteGroup(ctx, "u-exec", domain.RoleExecutive, g.ID)
	assert.ErrorIs(t, err, chaterrors.ErrDeleteForbidden)

	// admin cannot delete a manager-made group while the manager exists
	g = mkGroup(t, svc, "u-manager", "u-exec")
	err = svc.DeleteGroup(ctx, "u-admin", domain.RoleAdmin, g.ID)
	assert.ErrorIs(t, err, chaterrors.ErrDeleteForbidden)

	// but admin can once the creator's account is gone
	assert.NoError(t, users.Delete(ctx, "u-manager"))
	assert.NoError(t, svc.DeleteGroup(ctx, "u-admin", domain.RoleAdmin, g.ID))

	// admin can delete an hr-made group: HR ranks at or below Admin
	assert.NoError(t, users.Create(ctx, &user.User{
		ID: "u-hr2", Name: "HR2", Email: "hr2@test.local", Role: domain.RoleHR,
	}))
	g = mkGroup(t, svc, "u-hr2", "u-exec")
	assert.NoError(t, svc.DeleteGroup(ctx, "u-admin", domain.RoleAdmin, g.ID))
}

func TestDeleteGroupDropsMessages(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	g := mkGroup(t, svc, "u-hr", "u-exec")
	_, err := svc.SendGroupMessage(ctx, "u-exec", g.ID, SendMessageRequest{Content: "hello"})
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteGroup(ctx, "u-hr", domain.RoleHR, g.ID))

	_, err = svc.ListGroupConversation(ctx, "u-exec", g.ID)
	assert.ErrorIs(t, err, chaterrors.ErrGroupNotFound)
}

func TestMemberManagement(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	g := mkGroup(t, svc, "u-hr", "u-exec")

	// only top tier or creator may manage members
	_, err := svc.AddMembers(ctx, "u-exec", domain.RoleExecutive, g.ID, AddMembersRequest{Members: []string{"u-admin"}})
	assert.ErrorIs(t, err, chaterrors.ErrManageMembersForbidden)

	updated, err := svc.AddMembers(ctx, "u-hr", domain.RoleHR, g.ID, AddMembersRequest{Members: []string{"u-ceo"}})
	assert.NoError(t, err)
	assert.Contains(t, updated.Members, "u-ceo")

	// creator may not remove a CEO/Manager member
	_, err = svc.RemoveMember(ctx, "u-hr", domain.RoleHR, g.ID, "u-ceo")
	assert.ErrorIs(t, err, chaterrors.ErrRemoveMemberForbidden)

	// but a manager can remove anyone
	got, err := svc.RemoveMember(ctx, "u-manager", domain.RoleManager, g.ID, "u-ceo")
	assert.NoError(t, err)
	assert.NotContains(t, got.Members, "u-ceo")

	// creator removes a regular member
	got, err = svc.RemoveMember(ctx, "u-hr", domain.RoleHR, g.ID, "u-exec")
	assert.NoError(t, err)
	assert.NotContains(t, got.Members, "u-exec")

	// nobody removes themselves through the management path
	_, err = svc.RemoveMember(ctx, "u-hr", domain.RoleHR, g.ID, "u-hr")
	assert.ErrorIs(t, err, chaterrors.ErrSelfRemoval)

	_, err = svc.RemoveMember(ctx, "u-hr", domain.RoleHR, g.ID, "u-ghost")
	assert.ErrorIs(t, err, chaterrors.ErrMemberNotFound)
}

func TestRemoveMemberWithDeletedAccount(t *testing.T) {
	svc, users := setup(t)
	ctx := context.Background()

	g := mkGroup(t, svc, "u-hr", "u-exec", "u-admin")
	assert.NoError(t, users.Delete(ctx, "u-exec"))

	// the creator can still clean a deleted account out of the group
	got, err := svc.RemoveMember(ctx, "u-hr", domain.RoleHR, g.ID, "u-exec")
	assert.NoError(t, err)
	assert.NotContains(t, got.Members, "u-exec")
}

func TestGroupMessagingRequiresMembership(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	g := mkGroup(t, svc, "u-hr", "u-exec")

	_, err := svc.SendGroupMessage(ctx, "u-admin", g.ID, SendMessageRequest{Content: "intruding"})
	assert.ErrorIs(t, err, chaterrors.ErrNotAMember)

	_, err = svc.SendGroupMessage(ctx, "u-exec", g.ID, SendMessageRequest{Content: "  "})
	assert.ErrorIs(t, err, chaterrors.ErrEmptyMessage)

	_, err = svc.SendGroupMessage(ctx, "u-exec", g.ID, SendMessageRequest{Content: "hi", Type: "carrier-pigeon"})
	assert.ErrorIs(t, err, chaterrors.ErrInvalidMessageType)

	sent, err := svc.SendGroupMessage(ctx, "u-exec", g.ID, SendMessageRequest{Content: "hi all"})
	assert.NoError(t, err)
	assert.Equal(t, "Exec", sent.SenderName)
	assert.Equal(t, MessageText, sent.Type)

	// attachment-only messages are fine
	_, err = svc.SendGroupMessage(ctx, "u-exec", g.ID, SendMessageRequest{Type: MessageFile, FileURL: "blob://doc", FileName: "doc.pdf"})
	assert.NoError(t, err)

	_, err = svc.ListGroupConversation(ctx, "u-admin", g.ID)
	assert.ErrorIs(t, err, chaterrors.ErrNotAMember)

	msgs, err := svc.ListGroupConversation(ctx, "u-hr", g.ID)
	assert.NoError(t, err)
	assert.Len(t, msgs, 2)
	assert.Equal(t, "hi all", msgs[0].Content)
}

func TestDirectConversationMarksRead(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.SendDirectMessage(ctx, "u-exec", "u-ghost", SendMessageRequest{Content: "anyone?"})
	assert.Error(t, err)

	sent, err := svc.SendDirectMessage(ctx, "u-exec", "u-hr", SendMessageRequest{Content: "ping"})
	assert.NoError(t, err)
	assert.False(t, sent.Read)

	// sender's own view does not mark it read
	fromSender, err := svc.ListDirectConversation(ctx, "u-exec", "u-hr")
	assert.NoError(t, err)
	assert.Len(t, fromSender, 1)
	assert.False(t, fromSender[0].Read)

	// recipient opening the conversation does
	fromRecipient, err := svc.ListDirectConversation(ctx, "u-hr", "u-exec")
	assert.NoError(t, err)
	assert.Len(t, fromRecipient, 1)
	assert.True(t, fromRecipient[0].Read)
}
