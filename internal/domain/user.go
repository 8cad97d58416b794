package domain

import "time"

type Role string

const (
	RoleCompany   Role = "company"
	RoleJobSeeker Role = "job_seeker"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleCompany || r == RoleJobSeeker
}

// PasswordHash is the stored, one-way form of a password. Only
// password.Hasher produces one from plaintext.
type PasswordHash []byte

type User struct {
	ID           string
	Email        string
	PasswordHash PasswordHash
	FirstName    string
	LastName     string
	Role         Role
	Country      string
	CreatedAt    time.Time
}
