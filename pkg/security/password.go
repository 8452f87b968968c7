package security

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("password hashing failed")
	MinPasswordLen   = 8
)

// legacyHashTag is the bcrypt variant tag written by the tool that seeded the
// user table. Go's bcrypt only accepts $2a$/$2b$, so it is rewritten before
// comparison.
const legacyHashTag = "$2y$"

// PasswordHasher provides interface for password operations
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a new password hasher using bcrypt
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (b *bcryptHasher) Hash(password string) (string, error) {
	if len(password) < MinPasswordLen {
		return "", errors.New("password too short")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(bytes), nil
}

func (b *bcryptHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(NormalizeLegacyHash(hashedPassword)), []byte(password))
}

// NormalizeLegacyHash rewrites the legacy $2y$ hash tag to $2b$ so rows
// created by the old hashing tool keep verifying.
func NormalizeLegacyHash(hash string) string {
	if strings.HasPrefix(hash, legacyHashTag) {
		return "$2b$" + hash[len(legacyHashTag):]
	}
	return hash
}
