package services

import (
	"context"
	"fmt"
	"time"

	"kioskcheckin/internal/domain"
)

// sessionTTL bounds how long an unlocked kiosk stays unlocked. A full day
// covers an event without re-entering the passcode mid-shift.
const sessionTTL = 12 * time.Hour

type authService struct {
	comparer     domain.PasscodeComparer
	issuer       domain.TokenIssuer
	passcodeHash string
}

// NewAuthService creates the kiosk session service. passcodeHash is the
// bcrypt hash of the shared kiosk passcode from configuration.
func NewAuthService(comparer domain.PasscodeComparer, issuer domain.TokenIssuer, passcodeHash string) domain.AuthService {
	return &authService{comparer: comparer, issuer: issuer, passcodeHash: passcodeHash}
}

func (s *authService) StartSession(ctx context.Context, passcode string) (string, error) {
	if err := s.comparer.Compare(s.passcodeHash, passcode); err != nil {
		return "", domain.ErrBadPasscode
	}
	token, err := s.issuer.Issue("kiosk", sessionTTL)
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}
	return token, nil
}
