package auth

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost factor used when the caller passes 0.
const DefaultCost = 12

// HashPassword produces a salted bcrypt hash of plain. cost <= 0 selects
// DefaultCost.
func HashPassword(plain string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored hash. It returns
// false on an empty or corrupted hash; comparison errors are logged, never
// propagated.
func VerifyPassword(plain, hash string) bool {
	if hash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true
	}
	if err != bcrypt.ErrMismatchedHashAndPassword {
		slog.Warn("password hash comparison failed", "error", err)
	}
	return false
}
