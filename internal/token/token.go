// Package token issues and validates the bearer credentials used on
// every protected route, and keeps the revocation list that makes
// logout effective before a token's natural expiry.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DeniseL168/FinanceApp/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrExpired means the token is past its embedded expiry.
	ErrExpired = errors.New("token expired")
	// ErrMalformed means the token failed structural or signature checks.
	ErrMalformed = errors.New("token malformed")
	// ErrRevoked means the token id is on the revocation list.
	ErrRevoked = errors.New("token revoked")
)

// RevocationRetention is how long revocation records are kept. Tokens
// live at most an hour, so anything older is dead bookkeeping.
const RevocationRetention = 24 * time.Hour

// RevocationStore is the persistence the service needs for logout.
type RevocationStore interface {
	Add(ctx context.Context, jti string, at time.Time) error
	Contains(ctx context.Context, jti string) (bool, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) error
}

// Claims is the JWT payload: the user id travels in Subject, the
// revocable token id in ID (jti).
type Claims struct {
	jwt.RegisteredClaims
}

// Service issues, validates and revokes bearer tokens.
type Service struct {
	secret      []byte
	issuer      string
	ttl         time.Duration
	revocations RevocationStore
}

func NewService(secret, issuer string, ttl time.Duration, revocations RevocationStore) *Service {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		secret:      []byte(secret),
		issuer:      issuer,
		ttl:         ttl,
		revocations: revocations,
	}
}

// Issue signs a fresh HS256 token for the given user id.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies signature, expiry and revocation status, and
// returns the user id the token was issued for.
func (s *Service) Validate(ctx context.Context, tokenStr string) (string, error) {
	claims, err := s.parse(tokenStr, true)
	if err != nil {
		return "", err
	}

	revoked, err := s.revocations.Contains(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return "", ErrRevoked
	}

	return claims.Subject, nil
}

// Revoke puts the token's jti on the revocation list. Revoking an
// already-revoked token is a no-op; the store conflict is swallowed
// here so callers see idempotent success. Stale records are pruned
// lazily on the way in.
func (s *Service) Revoke(ctx context.Context, tokenStr string) error {
	// expiry is deliberately not checked: revoking a token that just
	// expired should still succeed
	claims, err := s.parse(tokenStr, false)
	if err != nil {
		return err
	}

	_ = s.PruneExpired(ctx)

	if err := s.revocations.Add(ctx, claims.ID, time.Now().UTC()); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("record revocation: %w", err)
	}
	return nil
}

// PruneExpired deletes revocation records older than the retention
// window. Safe to run on any schedule.
func (s *Service) PruneExpired(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-RevocationRetention)
	return s.revocations.DeleteOlderThan(ctx, cutoff)
}

func (s *Service) parse(tokenStr string, checkExpiry bool) (*Claims, error) {
	var opts []jwt.ParserOption
	if !checkExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	parser := jwt.NewParser(opts...)
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" || claims.Subject == "" {
		return nil, ErrMalformed
	}
	return claims, nil
}
