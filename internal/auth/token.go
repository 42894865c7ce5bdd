// Package auth issues and checks the admin session tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/metadata"

	svcErr "github.com/oggyb/barchat/internal/errors"
)

// AdminSubject is the subject of every admin token.
const AdminSubject = "admin"

var (
	ErrLoginDisabled = fmt.Errorf("%w: admin login is not configured", svcErr.ErrUnauthenticated)
	ErrBadPassphrase = fmt.Errorf("%w: wrong passphrase", svcErr.ErrUnauthenticated)
	ErrInvalidToken  = fmt.Errorf("%w: invalid admin token", svcErr.ErrUnauthenticated)
	ErrMissingBearer = fmt.Errorf("%w: missing bearer token", svcErr.ErrUnauthenticated)
)

// Admin checks the admin passphrase against a bcrypt hash and signs HS256
// tokens for it.
type Admin struct {
	hash   []byte
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAdmin builds the authenticator. An empty hash or secret disables
// login; every Login then fails with ErrLoginDisabled.
func NewAdmin(passphraseHash, secret string, ttl time.Duration, now func() time.Time) *Admin {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	if now == nil {
		now = time.Now
	}
	return &Admin{hash: []byte(passphraseHash), secret: []byte(secret), ttl: ttl, now: now}
}

// HashPassphrase returns the bcrypt hash to put in ADMIN_PASSPHRASE_HASH.
func HashPassphrase(passphrase string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Login verifies passphrase and returns a signed token and its expiry.
func (a *Admin) Login(passphrase string) (string, time.Time, error) {
	if len(a.hash) == 0 || len(a.secret) == 0 {
		return "", time.Time{}, ErrLoginDisabled
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(passphrase)); err != nil {
		return "", time.Time{}, ErrBadPassphrase
	}

	now := a.now()
	exp := now.Add(a.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   AdminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify accepts only unexpired HS256 admin tokens signed with our secret.
func (a *Admin) Verify(token string) error {
	if len(a.secret) == 0 {
		return ErrLoginDisabled
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(AdminSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return nil
}

// VerifyContext pulls "authorization: Bearer <token>" from the incoming
// metadata and verifies it.
func (a *Admin) VerifyContext(ctx context.Context) error {
	token, err := BearerToken(ctx)
	if err != nil {
		return err
	}
	return a.Verify(token)
}

// BearerToken extracts the bearer token from incoming gRPC metadata.
func BearerToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", ErrMissingBearer
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			if t := strings.TrimSpace(v[7:]); t != "" {
				return t, nil
			}
		}
	}
	return "", ErrMissingBearer
}

// IsAuthError reports whether err means the caller is not an admin.
func IsAuthError(err error) bool {
	return errors.Is(err, svcErr.ErrUnauthenticated)
}
