package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/metadata"

	"github.com/oggyb/barchat/internal/auth"
)

func hash(t *testing.T, pass string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.MinCost)
	require.NoError(t, err)
	return string(b)
}

func TestLoginAndVerify(t *testing.T) {
	now := time.Date(2026, 6, 12, 22, 0, 0, 0, time.UTC)
	a := auth.NewAdmin(hash(t, "open sesame"), "s3cret", time.Hour, func() time.Time { return now })

	_, _, err := a.Login("wrong")
	assert.ErrorIs(t, err, auth.ErrBadPassphrase)
	assert.True(t, auth.IsAuthError(err))

	token, exp, err := a.Login("open sesame")
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)
	assert.NoError(t, a.Verify(token))

	now = now.Add(2 * time.Hour)
	assert.ErrorIs(t, a.Verify(token), auth.ErrInvalidToken)
}

func TestVerify_RejectsForeignTokens(t *testing.T) {
	now := time.Date(2026, 6, 12, 22, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	a := auth.NewAdmin(hash(t, "pw"), "s3cret", time.Hour, clock)

	other := auth.NewAdmin(hash(t, "pw"), "another", time.Hour, clock)
	token, _, err := other.Login("pw")
	require.NoError(t, err)
	assert.ErrorIs(t, a.Verify(token), auth.ErrInvalidToken)

	notAdmin, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "Alice",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	assert.ErrorIs(t, a.Verify(notAdmin), auth.ErrInvalidToken)

	assert.ErrorIs(t, a.Verify("garbage"), auth.ErrInvalidToken)
}

func TestLogin_DisabledWithoutHash(t *testing.T) {
	a := auth.NewAdmin("", "s3cret", time.Hour, nil)
	_, _, err := a.Login("anything")
	assert.ErrorIs(t, err, auth.ErrLoginDisabled)
}

func TestBearerToken(t *testing.T) {
	_, err := auth.BearerToken(context.Background())
	assert.ErrorIs(t, err, auth.ErrMissingBearer)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer abc.def"))
	token, err := auth.BearerToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic abc"))
	_, err = auth.BearerToken(ctx)
	assert.ErrorIs(t, err, auth.ErrMissingBearer)
}
