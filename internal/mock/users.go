package mock

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type userRecord struct {
	Username     string
	Email        string
	IsAdmin      bool
	PasswordHash string
}

// HashPassword generates a bcrypt hash from a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password with a bcrypt hash.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// seedUsers is the development account the mock backend boots with.
func seedUsers() map[string]*userRecord {
	hash, err := HashPassword("test")
	if err != nil {
		panic(err)
	}
	return map[string]*userRecord{
		"nrodrig1@gmail.com": {
			Username:     "nrodrig1",
			Email:        "nrodrig1@gmail.com",
			IsAdmin:      true,
			PasswordHash: hash,
		},
	}
}
