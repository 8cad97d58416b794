package domain

import (
	"errors"
	"time"
)

var (
	ErrProfileNotFound  = errors.New("company profile not found")
	ErrDuplicateProfile = errors.New("user already created a company")
)

// CompanyProfile is owned by exactly one User and removed with it.
type CompanyProfile struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Website     *string // nil means not provided
	CreatedAt   time.Time
}
