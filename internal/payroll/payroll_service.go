package payroll

import (
	"context"
	"time"

	"hr-panel/internal/domain"
	payrollerrors "hr-panel/internal/payroll/errors"
	"hr-panel/internal/rbac"
	"hr-panel/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Upsert(ctx context.Context, req UpsertEntryRequest) (EntryResponse, error)
	GetAll(ctx context.Context, actorID string, actorRole domain.Role) ([]EntryResponse, error)
	MarkPaid(ctx context.Context, id string) (EntryResponse, error)
	Payslip(ctx context.Context, actorID string, actorRole domain.Role, id string) (*Slip, error)
}

// Slip is a rendered or uploaded payslip document ready to serve.
type Slip struct {
	FileName    string
	ContentType string
	Content     []byte
}

type service struct {
	repo   Repository
	users  user.Repository
	logger *zap.Logger
}

func NewService(repo Repository, users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{repo: repo, users: users, logger: l}
}

func (s *service) Upsert(ctx context.Context, req UpsertEntryRequest) (EntryResponse, error) {
	if _, err := time.Parse("2006-01", req.Month); err != nil {
		return EntryResponse{}, payrollerrors.ErrInvalidMonth
	}

	base, ok := parseAmount(req.BaseSalary)
	if !ok {
		return EntryResponse{}, payrollerrors.ErrInvalidAmount
	}
	bonus, ok := parseAmount(req.Bonus)
	if !ok {
		return EntryResponse{}, payrollerrors.ErrInvalidAmount
	}
	deductions, ok := parseAmount(req.Deductions)
	if !ok {
		return EntryResponse{}, payrollerrors.ErrInvalidAmount
	}

	target, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		return EntryResponse{}, payrollerrors.ErrUserNotFound
	}
	if target.Role == domain.RoleCEO {
		return EntryResponse{}, payrollerrors.ErrCEONotPayrolled
	}

	e := &Entry{
		ID:         uuid.New().String(),
		UserID:     req.UserID,
		Month:      req.Month,
		BaseSalary: base,
		Bonus:      bonus,
		Deductions: deductions,
		Status:     StatusProcessing,
		CustomSlip: req.CustomSlip,
		FileName:   req.FileName,
	}
	e.recomputeNet()

	if err := s.repo.Upsert(ctx, e); err != nil {
		return EntryResponse{}, err
	}

	s.logger.Info("payroll entry saved",
		zap.String("entry_id", e.ID),
		zap.String("user_id", e.UserID),
		zap.String("month", e.Month),
	)
	return mapToResponse(*e, target.Name), nil
}

func (s *service) GetAll(ctx context.Context, actorID string, actorRole domain.Role) ([]EntryResponse, error) {
	var (
		entries []Entry
		err     error
	)
	if rbac.IsManagement(actorRole) {
		entries, err = s.repo.FindAll(ctx)
	} else {
		entries, err = s.repo.FindAllByUser(ctx, actorID)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]EntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = mapToResponse(e, s.userName(ctx, e.UserID))
	}
	return resp, nil
}

func (s *service) MarkPaid(ctx context.Context, id string) (EntryResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EntryResponse{}, err
	}

	e.Status = StatusPaid
	if err := s.repo.Upsert(ctx, e); err != nil {
		return EntryResponse{}, err
	}

	s.logger.Info("payroll entry marked paid", zap.String("entry_id", id))
	return mapToResponse(*e, s.userName(ctx, e.UserID)), nil
}

// Payslip serves the uploaded document when one exists, otherwise renders
// the standard HTML slip. Non-management callers only get their own.
func (s *service) Payslip(ctx context.Context, actorID string, actorRole domain.Role, id string) (*Slip, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rbac.IsManagement(actorRole) && e.UserID != actorID {
		return nil, payrollerrors.ErrSlipNotAvailable
	}

	u, err := s.users.FindByID(ctx, e.UserID)
	if err != nil {
		return nil, payrollerrors.ErrUserNotFound
	}

	if e.CustomSlip != "" {
		content, err := decodeSlip(e.CustomSlip)
		if err != nil {
			return nil, payrollerrors.ErrSlipNotAvailable
		}
		name := e.FileName
		if name == "" {
			name = "payslip-" + e.Month
		}
		return &Slip{
			FileName:    name,
			ContentType: "application/octet-stream",
			Content:     content,
		}, nil
	}

	content, err := renderPayslip(*e, *u)
	if err != nil {
		return nil, err
	}
	return &Slip{
		FileName:    "Payslip_" + u.Name + "_" + e.Month + ".html",
		ContentType: "text/html; charset=utf-8",
		Content:     content,
	}, nil
}

func (s *service) userName(ctx context.Context, userID string) string {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "Unknown"
	}
	return u.Name
}
