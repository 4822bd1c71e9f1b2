package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kioskcheckin/internal/domain"
)

type sessionClaims struct {
	jwt.RegisteredClaims
}

type jwtSessions struct {
	secret []byte
}

// NewJWTSessions returns a TokenIssuer/TokenVerifier pair that signs kiosk
// session JWTs with HS256 using the given secret.
func NewJWTSessions(secret string) (domain.TokenIssuer, domain.TokenVerifier) {
	s := &jwtSessions{secret: []byte(secret)}
	return s, s
}

func (s *jwtSessions) Issue(subject string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (s *jwtSessions) Verify(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Subject, nil
}
