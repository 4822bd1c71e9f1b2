package domain

import (
	"context"
	"errors"
	"time"
)

var ErrBadPasscode = errors.New("invalid kiosk passcode")

// TokenIssuer issues session tokens (e.g. JWT) for an unlocked kiosk.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a session token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// PasscodeComparer checks a plaintext passcode against a stored hash.
type PasscodeComparer interface {
	Compare(hash, passcode string) error
}

// AuthService unlocks a kiosk session. The staff OAuth flow against the
// identity provider lives in the browser; this only guards the kiosk API.
type AuthService interface {
	StartSession(ctx context.Context, passcode string) (token string, err error)
}
