package user

import (
	"hr-panel/internal/domain"
)

// User is the single person entity of the panel. Department is free text;
// PasswordHash is empty when the account still uses the seeded default
// credential (the auth service falls back to the default hash then).
type User struct {
	ID           string
	Name         string
	Role         domain.Role
	Email        string
	Department   string
	Avatar       string
	PasswordHash string
}
