package seed

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"hr-panel/internal/domain"
	"hr-panel/internal/shared/secure"
	"hr-panel/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPasswordHash computes the hash that backs every account without
// an explicit password. The plaintext comes from DEFAULT_PASSWORD, falling
// back to the stock demo credential.
func DefaultPasswordHash(hasher secure.PasswordHasher) (string, error) {
	plain := os.Getenv("DEFAULT_PASSWORD")
	if plain == "" {
		plain = "password"
	}
	return hasher.Hash(plain)
}

type seedUser struct {
	name       string
	email      string
	role       domain.Role
	department string
}

var seedUsers = []seedUser{
	{"Admin", "admin@teleexpro.com", domain.RoleCEO, "Management"},
	{"Maya Iyer", "maya.iyer@teleexpro.com", domain.RoleManager, "Operations"},
	{"Arjun Rao", "arjun.rao@teleexpro.com", domain.RoleAdmin, "Operations"},
	{"Priya Nair", "priya.nair@teleexpro.com", domain.RoleHR, "Human Resources"},
	{"Kabir Shah", "kabir.shah@teleexpro.com", domain.RoleTeamLeader, "Sales"},
	{"Sana Verma", "sana.verma@teleexpro.com", domain.RoleExecutive, "Sales"},
	{"Rohan Mehta", "rohan.mehta@teleexpro.com", domain.RoleExecutive, "Sales"},
}

// Users loads the demo employee roster. Seeded accounts carry no hash of
// their own and authenticate with the shared default credential.
func Users(ctx context.Context, repo user.Repository, logger *zap.Logger) error {
	for _, s := range seedUsers {
		u := &user.User{
			ID:         uuid.New().String(),
			Name:       s.name,
			Email:      s.email,
			Role:       s.role,
			Department: s.department,
			Avatar:     avatarURL(s.name),
		}
		if err := repo.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", s.email, err)
		}
	}
	logger.Info("seeded demo users", zap.Int("count", len(seedUsers)))
	return nil
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?background=random&name=" + url.QueryEscape(name)
}
