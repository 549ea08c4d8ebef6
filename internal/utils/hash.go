package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plaintext password using
// the library's default cost.
//
// The returned hash embeds the salt and cost parameters, so it is the only
// value that needs to be stored for later verification.
//
// Parameters:
//
//	password - plaintext password to hash
//
// Returns:
//
//	string - the encoded bcrypt hash
//	error  - non-nil if the password exceeds bcrypt's length limit or
//	         hashing fails
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash.
//
// Parameters:
//
//	hash     - encoded bcrypt hash previously produced by HashPassword
//	password - plaintext candidate to verify
//
// Returns:
//
//	bool - true when the password matches the hash
//
// Example usage:
//
//	if !utils.CheckPassword(stored, candidate) {
//	    // reject the credentials
//	}
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
