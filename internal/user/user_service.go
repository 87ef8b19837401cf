package user

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"hr-panel/internal/domain"
	"hr-panel/internal/rbac"
	"hr-panel/internal/shared/secure"
	usererrors "hr-panel/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, actorRole domain.Role, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, actorRole domain.Role, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, actorRole domain.Role, id string) error
	ResetPassword(ctx context.Context, actorRole domain.Role, id string, req ResetPasswordRequest) error
	UpdateProfile(ctx context.Context, actorID string, actorRole domain.Role, req UpdateProfileRequest) (UserResponse, error)
}

type service struct {
	repo   Repository
	hasher secure.PasswordHasher
	logger *zap.Logger
}

func NewService(repo Repository, hasher secure.PasswordHasher, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, hasher: hasher, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Create(ctx context.Context, actorRole domain.Role, req CreateUserRequest) (UserResponse, error) {
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return UserResponse{}, usererrors.ErrInvalidRole
	}
	if !rbac.CanManageUser(actorRole, role) {
		s.logger.Warn("create user denied",
			zap.String("actor_role", string(actorRole)),
			zap.String("target_role", string(role)),
		)
		return UserResponse{}, usererrors.ErrManageForbidden
	}
	if !rbac.CanAssignRole(actorRole, role) {
		return UserResponse{}, usererrors.ErrAssignRoleForbidden
	}

	u := &User{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Role:       role,
		Department: strings.TrimSpace(req.Department),
		Avatar:     defaultAvatar(req.Name),
	}

	// Empty password keeps the account on the seeded default credential.
	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return UserResponse{}, err
		}
		u.PasswordHash = hash
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return UserResponse{}, err
	}
	s.logger.Info("user created",
		zap.String("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, actorRole domain.Role, id string, req UpdateUserRequest) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	if !rbac.CanManageUser(actorRole, u.Role) {
		return UserResponse{}, usererrors.ErrManageForbidden
	}

	newRole, ok := domain.ParseRole(req.Role)
	if !ok {
		return UserResponse{}, usererrors.ErrInvalidRole
	}
	if newRole != u.Role {
		if !rbac.CanManageUser(actorRole, newRole) {
			return UserResponse{}, usererrors.ErrManageForbidden
		}
		if !rbac.CanAssignRole(actorRole, newRole) {
			return UserResponse{}, usererrors.ErrAssignRoleForbidden
		}
		// Demoting the last CEO would leave the panel without one.
		if u.Role == domain.RoleCEO {
			if err := s.guardLastCEO(ctx); err != nil {
				return UserResponse{}, err
			}
		}
	}

	u.Name = strings.TrimSpace(req.Name)
	u.Email = strings.TrimSpace(req.Email)
	u.Role = newRole
	u.Department = strings.TrimSpace(req.Department)

	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, err
	}
	s.logger.Info("user updated", zap.String("user_id", u.ID))
	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, actorRole domain.Role, id string) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !rbac.CanManageUser(actorRole, u.Role) {
		s.logger.Warn("delete user denied",
			zap.String("actor_role", string(actorRole)),
			zap.String("target_role", string(u.Role)),
		)
		return usererrors.ErrManageForbidden
	}
	// The sole CEO is protected from every actor, including a CEO.
	if u.Role == domain.RoleCEO {
		if err := s.guardLastCEO(ctx); err != nil {
			return err
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("user_id", id))
	return nil
}

func (s *service) ResetPassword(ctx context.Context, actorRole domain.Role, id string, req ResetPasswordRequest) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !rbac.CanManageUser(actorRole, u.Role) {
		return usererrors.ErrManageForbidden
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash

	if err := s.repo.Update(ctx, u); err != nil {
		return err
	}
	s.logger.Info("password reset", zap.String("user_id", id))
	return nil
}

func (s *service) UpdateProfile(ctx context.Context, actorID string, actorRole domain.Role, req UpdateProfileRequest) (UserResponse, error) {
	if !rbac.CanEditOwnProfile(actorRole) {
		return UserResponse{}, usererrors.ErrProfileEditForbidden
	}

	u, err := s.repo.FindByID(ctx, actorID)
	if err != nil {
		return UserResponse{}, err
	}

	u.Name = strings.TrimSpace(req.Name)
	if req.Avatar != "" {
		u.Avatar = req.Avatar
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) guardLastCEO(ctx context.Context) error {
	n, err := s.repo.CountByRole(ctx, domain.RoleCEO)
	if err != nil {
		return err
	}
	if n <= 1 {
		return usererrors.ErrLastCEO
	}
	return nil
}

func defaultAvatar(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=0D8ABC&color=fff", url.QueryEscape(name))
}
