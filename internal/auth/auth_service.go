package auth

import (
	"context"
	"os"
	"time"

	autherrors "hr-panel/internal/auth/errors"
	"hr-panel/internal/shared/secure"
	"hr-panel/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	users  user.Repository
	hasher secure.PasswordHasher
	// defaultHash backs accounts that never had a password set. It is the
	// hash of the shared bootstrap password, never the plaintext itself.
	defaultHash string
	logger      *zap.Logger
}

func NewService(users user.Repository, hasher secure.PasswordHasher, defaultHash string, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, hasher: hasher, defaultHash: defaultHash, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	hash := u.PasswordHash
	if hash == "" {
		hash = s.defaultHash
	}
	if err := s.hasher.Compare(hash, password); err != nil {
		s.logger.Warn("login rejected", zap.String("email", email))
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	access, err := s.generateToken(u.ID, string(u.Role), 15*time.Minute)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.generateToken(u.ID, string(u.Role), 7*24*time.Hour)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	return TokenPair{AccessToken: access, RefreshToken: refresh}, mapToAuthResponse(*u), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrUserNotFound
	}

	access, err := s.generateToken(u.ID, string(u.Role), 15*time.Minute)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.generateToken(u.ID, string(u.Role), 7*24*time.Hour)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, mapToAuthResponse(*u), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}
	resp := mapToAuthResponse(*u)
	return &resp, nil
}

func (s *service) generateToken(userID, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToAuthResponse(u user.User) AuthResponse {
	return AuthResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		Department: u.Department,
		Avatar:     u.Avatar,
	}
}
