package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrExpired means the token was well formed and correctly signed
	// but its expiry has passed.
	ErrExpired = errors.New("token expired")
	// ErrMalformed means the token could not be parsed, the signature
	// did not match, or a required claim is absent.
	ErrMalformed = errors.New("token malformed or forged")
)

// Claims is the minimal identity payload carried inside a token:
// subject is the user id, Email the login email. No authorization
// scopes are encoded.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Issuer mints and verifies HS256 bearer tokens against a single
// process-wide secret. The secret is immutable after construction, so
// concurrent Issue/Verify calls need no locking. Rotating the secret
// invalidates every outstanding token.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("signing secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given user. Two calls for the same user
// always produce distinct tokens: the jti is fresh per call.
func (i *Issuer) Issue(userID string, email string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Email: email,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks signature and freshness against the current time and
// returns the decoded claims. It never touches a store.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrMalformed
	}

	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrMalformed
	}

	return claims, nil
}
