package chat

import (
	"context"
	"strings"
	"time"

	chaterrors "hr-panel/internal/chat/errors"
	"hr-panel/internal/domain"
	"hr-panel/internal/rbac"
	"hr-panel/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	CreateGroup(ctx context.Context, actorID string, req CreateGroupRequest) (GroupResponse, error)
	GetGroups(ctx context.Context, actorID string) ([]GroupResponse, error)
	DeleteGroup(ctx context.Context, actorID string, actorRole domain.Role, groupID string) error
	AddMembers(ctx context.Context, actorID string, actorRole domain.Role, groupID string, req AddMembersRequest) (GroupResponse, error)
	RemoveMember(ctx context.Context, actorID string, actorRole domain.Role, groupID, memberID string) (GroupResponse, error)
	SendGroupMessage(ctx context.Context, actorID, groupID string, req SendMessageRequest) (MessageResponse, error)
	ListGroupConversation(ctx context.Context, actorID, groupID string) ([]MessageResponse, error)
	SendDirectMessage(ctx context.Context, actorID, otherID string, req SendMessageRequest) (MessageResponse, error)
	ListDirectConversation(ctx context.Context, actorID, otherID string) ([]MessageResponse, error)
}

type service struct {
	groups   GroupRepository
	messages MessageRepository
	users    user.Repository
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(groups GroupRepository, messages MessageRepository, users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("chat.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chat.service")
	}
	return &service{groups: groups, messages: messages, users: users, now: time.Now, logger: l}
}

func (s *service) CreateGroup(ctx context.Context, actorID string, req CreateGroupRequest) (GroupResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return GroupResponse{}, chaterrors.ErrNameRequired
	}

	members := dedupe(append(req.Members, actorID))
	if len(members) < 2 {
		return GroupResponse{}, chaterrors.ErrMembersRequired
	}
	for _, id := range members {
		if _, err := s.users.FindByID(ctx, id); err != nil {
			return GroupResponse{}, err
		}
	}

	g := &Group{
		ID:        uuid.New().String(),
		Name:      name,
		Avatar:    req.Avatar,
		CreatedBy: actorID,
		Members:   members,
	}
	if err := s.groups.Create(ctx, g); err != nil {
		return GroupResponse{}, err
	}

	s.logger.Info("group created",
		zap.String("group_id", g.ID),
		zap.String("creator_id", actorID),
		zap.Int("members", len(members)),
	)
	return mapGroupToResponse(*g), nil
}

func (s *service) GetGroups(ctx context.Context, actorID string) ([]GroupResponse, error) {
	groups, err := s.groups.FindAllForUser(ctx, actorID)
	if err != nil {
		return nil, err
	}

	resp := make([]GroupResponse, len(groups))
	for i, g := range groups {
		resp[i] = mapGroupToResponse(g)
	}
	return resp, nil
}

// DeleteGroup also drops the group's message history. When the creator's
// account no longer exists their rank cannot be compared, which widens the
// admin path of the permission check.
func (s *service) DeleteGroup(ctx context.Context, actorID string, actorRole domain.Role, groupID string) error {
	g, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return err
	}

	var creatorRole *domain.Role
	if creator, err := s.users.FindByID(ctx, g.CreatedBy); err == nil {
		creatorRole = &creator.Role
	}
	if !rbac.CanDeleteGroup(actorID, actorRole, g.CreatedBy, creatorRole) {
		return chaterrors.ErrDeleteForbidden
	}

	if err := s.groups.Delete(ctx, groupID); err != nil {
		return err
	}
	if err := s.messages.DeleteByReceiver(ctx, groupID); err != nil {
		return err
	}

	s.logger.Info("group deleted",
		zap.String("group_id", groupID),
		zap.String("actor_id", actorID),
	)
	return nil
}

func (s *service) AddMembers(ctx context.Context, actorID string, actorRole domain.Role, groupID string, req AddMembersRequest) (GroupResponse, error) {
	g, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return GroupResponse{}, err
	}
	if !rbac.CanManageGroupMembers(actorID, actorRole, g.CreatedBy) {
		return GroupResponse{}, chaterrors.ErrManageMembersForbidden
	}

	for _, id := range req.Members {
		if _, err := s.users.FindByID(ctx, id); err != nil {
			return GroupResponse{}, err
		}
	}
	g.Members = dedupe(append(g.Members, req.Members...))

	if err := s.groups.Update(ctx, g); err != nil {
		return GroupResponse{}, err
	}
	return mapGroupToResponse(*g), nil
}

func (s *service) RemoveMember(ctx context.Context, actorID string, actorRole domain.Role, groupID, memberID string) (GroupResponse, error) {
	if memberID == actorID {
		return GroupResponse{}, chaterrors.ErrSelfRemoval
	}

	g, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return GroupResponse{}, err
	}
	if !g.HasMember(memberID) {
		return GroupResponse{}, chaterrors.ErrMemberNotFound
	}

	// A deleted account holds no rank, so treat it as the lowest.
	memberRole := domain.RoleExecutive
	if member, err := s.users.FindByID(ctx, memberID); err == nil {
		memberRole = member.Role
	}
	if !rbac.CanRemoveGroupMember(actorID, actorRole, g.CreatedBy, memberRole) {
		return GroupResponse{}, chaterrors.ErrRemoveMemberForbidden
	}

	kept := g.Members[:0]
	for _, m := range g.Members {
		if m != memberID {
			kept = append(kept, m)
		}
	}
	g.Members = kept

	if err := s.groups.Update(ctx, g); err != nil {
		return GroupResponse{}, err
	}

	s.logger.Info("group member removed",
		zap.String("group_id", groupID),
		zap.String("member_id", memberID),
		zap.String("actor_id", actorID),
	)
	return mapGroupToResponse(*g), nil
}

func (s *service) SendGroupMessage(ctx context.Context, actorID, groupID string, req SendMessageRequest) (MessageResponse, error) {
	g, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return MessageResponse{}, err
	}
	if !g.HasMember(actorID) {
		return MessageResponse{}, chaterrors.ErrNotAMember
	}
	return s.send(ctx, actorID, groupID, req)
}

func (s *service) ListGroupConversation(ctx context.Context, actorID, groupID string) ([]MessageResponse, error) {
	g, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !g.HasMember(actorID) {
		return nil, chaterrors.ErrNotAMember
	}

	messages, err := s.messages.FindByReceiver(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return s.mapAll(ctx, messages), nil
}

func (s *service) SendDirectMessage(ctx context.Context, actorID, otherID string, req SendMessageRequest) (MessageResponse, error) {
	if _, err := s.users.FindByID(ctx, otherID); err != nil {
		return MessageResponse{}, err
	}
	return s.send(ctx, actorID, otherID, req)
}

// ListDirectConversation returns the two-way history and marks the other
// side's messages as read.
func (s *service) ListDirectConversation(ctx context.Context, actorID, otherID string) ([]MessageResponse, error) {
	if _, err := s.users.FindByID(ctx, otherID); err != nil {
		return nil, err
	}

	if err := s.messages.MarkRead(ctx, otherID, actorID); err != nil {
		return nil, err
	}
	messages, err := s.messages.FindDirect(ctx, actorID, otherID)
	if err != nil {
		return nil, err
	}
	return s.mapAll(ctx, messages), nil
}

func (s *service) send(ctx context.Context, senderID, receiverID string, req SendMessageRequest) (MessageResponse, error) {
	msgType := req.Type
	if msgType == "" {
		msgType = MessageText
	}
	if !validMessageType(msgType) {
		return MessageResponse{}, chaterrors.ErrInvalidMessageType
	}

	content := strings.TrimSpace(req.Content)
	if content == "" && req.FileURL == "" {
		return MessageResponse{}, chaterrors.ErrEmptyMessage
	}

	m := &Message{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Type:       msgType,
		FileURL:    req.FileURL,
		FileName:   req.FileName,
		Timestamp:  s.now(),
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return MessageResponse{}, err
	}
	return mapMessageToResponse(*m, s.userName(ctx, senderID)), nil
}

func (s *service) mapAll(ctx context.Context, messages []Message) []MessageResponse {
	resp := make([]MessageResponse, len(messages))
	for i, m := range messages {
		resp[i] = mapMessageToResponse(m, s.userName(ctx, m.SenderID))
	}
	return resp
}

func (s *service) userName(ctx context.Context, userID string) string {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "Unknown"
	}
	return u.Name
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
