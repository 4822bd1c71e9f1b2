package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"kioskcheckin/internal/domain"
)

type bcryptComparer struct{}

// NewBcryptComparer returns a PasscodeComparer over bcrypt hashes. The stored
// hash is produced out of band (e.g. with HashPasscode during provisioning).
func NewBcryptComparer() domain.PasscodeComparer {
	return &bcryptComparer{}
}

func (bcryptComparer) Compare(hash, passcode string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode))
}

// HashPasscode hashes a kiosk passcode for storage in configuration.
func HashPasscode(passcode string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passcode: %w", err)
	}
	return string(hash), nil
}
