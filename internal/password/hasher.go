package password

import (
	"errors"
	"fmt"

	"github.com/ErlanBelekov/jobboard/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var ErrEmpty = errors.New("password is empty")

// MaxBytes is the longest input bcrypt accepts.
const MaxBytes = 72

// Hasher turns plaintext passwords into bcrypt hashes and checks them.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted hash of plaintext. Input longer than MaxBytes
// fails with domain.ErrPasswordTooLong.
func (h *Hasher) Hash(plaintext string) (domain.PasswordHash, error) {
	if plaintext == "" {
		return nil, ErrEmpty
	}
	if len(plaintext) > MaxBytes {
		return nil, domain.ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return domain.PasswordHash(hash), nil
}

// Verify reports whether plaintext is the password hash was produced from.
func (h *Hasher) Verify(plaintext string, hash domain.PasswordHash) bool {
	if len(hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(plaintext)) == nil
}
