package announcement

import (
	"context"
	"strings"
	"time"

	"hr-panel/internal/ai"
	announcementerrors "hr-panel/internal/announcement/errors"
	"hr-panel/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, actorID string, req CreateAnnouncementRequest) (AnnouncementResponse, error)
	GetAll(ctx context.Context) ([]AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
	Generate(ctx context.Context, req GenerateAnnouncementRequest) (GeneratedContentResponse, error)
}

type service struct {
	repo   Repository
	users  user.Repository
	ai     *ai.Client
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, users user.Repository, aiClient *ai.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("announcement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("announcement.service")
	}
	return &service{repo: repo, users: users, ai: aiClient, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateAnnouncementRequest) (AnnouncementResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return AnnouncementResponse{}, announcementerrors.ErrTitleRequired
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return AnnouncementResponse{}, announcementerrors.ErrContentRequired
	}

	priority := req.Priority
	if priority == "" {
		priority = PriorityNormal
	}
	if !validPriority(priority) {
		return AnnouncementResponse{}, announcementerrors.ErrInvalidPriority
	}

	a := &Announcement{
		ID:       uuid.New().String(),
		Title:    title,
		Content:  content,
		AuthorID: actorID,
		Date:     s.now().Format("2006-01-02"),
		Priority: priority,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return AnnouncementResponse{}, err
	}

	s.logger.Info("announcement published",
		zap.String("announcement_id", a.ID),
		zap.String("author_id", actorID),
	)
	return mapToResponse(*a, s.userName(ctx, actorID)), nil
}

func (s *service) GetAll(ctx context.Context) ([]AnnouncementResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]AnnouncementResponse, len(items))
	for i, a := range items {
		resp[i] = mapToResponse(a, s.userName(ctx, a.AuthorID))
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("announcement deleted", zap.String("announcement_id", id))
	return nil
}

// Generate drafts body text without persisting anything; the caller decides
// whether to publish the result.
func (s *service) Generate(ctx context.Context, req GenerateAnnouncementRequest) (GeneratedContentResponse, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return GeneratedContentResponse{}, announcementerrors.ErrTopicRequired
	}
	if !validTone(req.Tone) {
		return GeneratedContentResponse{}, announcementerrors.ErrInvalidTone
	}

	return GeneratedContentResponse{
		Content: s.ai.GenerateAnnouncement(ctx, topic, req.Tone),
	}, nil
}

func (s *service) userName(ctx context.Context, userID string) string {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "Unknown"
	}
	return u.Name
}
