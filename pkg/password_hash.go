package pkg

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor for admin passwords.
const PasswordHashCost = 10

var ErrEmptyPassword = errors.New("password cannot be empty")

// HashPassword salts and hashes an admin password. Passwords longer than
// 72 bytes are rejected by bcrypt instead of being silently truncated.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return BytesToString(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
