package leads

import (
	"context"
	"time"

	"hr-panel/internal/domain"
	leaderrors "hr-panel/internal/leads/errors"
	"hr-panel/internal/rbac"
	"hr-panel/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Distribute(ctx context.Context, rows []ParsedLead) (DistributionResponse, error)
	GetAll(ctx context.Context, actorID string, actorRole domain.Role) ([]LeadResponse, error)
	UpdateStatus(ctx context.Context, actorID string, actorRole domain.Role, id, status string) (LeadResponse, error)
}

type service struct {
	repo   Repository
	users  user.Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leads.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leads.service")
	}
	return &service{repo: repo, users: users, now: time.Now, logger: l}
}

// Distribute assigns parsed rows round-robin across all executives, in
// input order, starting from the first executive on every batch.
func (s *service) Distribute(ctx context.Context, rows []ParsedLead) (DistributionResponse, error) {
	if len(rows) == 0 {
		return DistributionResponse{}, leaderrors.ErrNoValidRows
	}

	executives, err := s.users.FindByRole(ctx, domain.RoleExecutive)
	if err != nil {
		return DistributionResponse{}, err
	}
	if len(executives) == 0 {
		return DistributionResponse{}, leaderrors.ErrNoExecutives
	}

	today := s.now().Format("2006-01-02")
	batch := make([]Lead, len(rows))
	for i, row := range rows {
		batch[i] = Lead{
			ID:         uuid.New().String(),
			Name:       row.Name,
			Email:      row.Email,
			Phone:      row.Phone,
			Status:     StatusNew,
			AssignedTo: executives[i%len(executives)].ID,
			CreatedAt:  today,
		}
	}
	if err := s.repo.CreateBatch(ctx, batch); err != nil {
		return DistributionResponse{}, err
	}

	s.logger.Info("leads distributed",
		zap.Int("count", len(batch)),
		zap.Int("executives", len(executives)),
	)

	resp := DistributionResponse{Created: len(batch), Leads: make([]LeadResponse, len(batch))}
	for i, l := range batch {
		resp.Leads[i] = mapToResponse(l, s.userName(ctx, l.AssignedTo))
	}
	return resp, nil
}

func (s *service) GetAll(ctx context.Context, actorID string, actorRole domain.Role) ([]LeadResponse, error) {
	var (
		all []Lead
		err error
	)
	if rbac.CanViewAllLeads(actorRole) {
		all, err = s.repo.FindAll(ctx)
	} else {
		all, err = s.repo.FindAllByAssignee(ctx, actorID)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]LeadResponse, len(all))
	for i, l := range all {
		resp[i] = mapToResponse(l, s.userName(ctx, l.AssignedTo))
	}
	return resp, nil
}

func (s *service) UpdateStatus(ctx context.Context, actorID string, actorRole domain.Role, id, status string) (LeadResponse, error) {
	if !validStatus(status) {
		return LeadResponse{}, leaderrors.ErrInvalidStatus
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeadResponse{}, err
	}
	if !rbac.CanViewAllLeads(actorRole) && l.AssignedTo != actorID {
		return LeadResponse{}, leaderrors.ErrUpdateForbidden
	}

	l.Status = status
	if err := s.repo.Update(ctx, l); err != nil {
		return LeadResponse{}, err
	}

	s.logger.Info("lead status updated",
		zap.String("lead_id", id),
		zap.String("status", status),
	)
	return mapToResponse(*l, s.userName(ctx, l.AssignedTo)), nil
}

func (s *service) userName(ctx context.Context, userID string) string {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "Unknown"
	}
	return u.Name
}
