package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext secret using bcrypt. Every place that
// creates or updates an account goes through this single function.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext secret with a bcrypt hash in
// constant time.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
