package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuerName = "stayhaven"

// Claims is the verified content of a session token.
type Claims struct {
	UserID string
	Phone  string
}

type sessionClaims struct {
	Phone string `json:"phone"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies HS256 session tokens bound to a user id and phone.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// New builds an Issuer. The secret must be at least 16 characters; generate it
// with something like `openssl rand -hex 32`.
func New(secret string, ttl time.Duration) (*Issuer, error) {
	if len(secret) < 16 {
		return nil, errors.New("token: secret must be at least 16 characters")
	}
	if ttl <= 0 {
		return nil, errors.New("token: ttl must be positive")
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given user. The token expires after the
// configured lifetime; there is no revocation before expiry.
func (i *Issuer) Issue(userID, phone string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Phone: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    issuerName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify parses a token string and returns its claims if the signature and
// expiry check out.
func (i *Issuer) Verify(tokenStr string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenStr,
		&sessionClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("token: unexpected signing method %v", t.Header["alg"])
			}
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuerName),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("token: invalid token: %w", err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return Claims{}, errors.New("token: invalid claims")
	}
	if claims.Subject == "" {
		return Claims{}, errors.New("token: missing subject")
	}

	return Claims{UserID: claims.Subject, Phone: claims.Phone}, nil
}
