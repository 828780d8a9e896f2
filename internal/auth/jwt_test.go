package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123"

func TestParseToken(t *testing.T) {
	valid, err := auth.IssueToken("driver@example.com", secret, time.Hour)
	require.NoError(t, err)

	expired, err := auth.IssueToken("driver@example.com", secret, -time.Hour)
	require.NoError(t, err)

	otherSecret, err := auth.IssueToken("driver@example.com", "another-secret-value", time.Hour)
	require.NoError(t, err)

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{}).SignedString([]byte(secret))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, auth.Claims{Email: "driver@example.com"}).SignedString([]byte(secret))
	require.NoError(t, err)

	testCases := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{name: "valid", token: valid, want: "driver@example.com"},
		{name: "expired", token: expired, wantErr: true},
		{name: "wrong secret", token: otherSecret, wantErr: true},
		{name: "missing email", token: noEmail, wantErr: true},
		{name: "unexpected method", token: hs512, wantErr: true},
		{name: "garbage", token: "not-a-token", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := auth.ParseToken(tc.token, secret)
			if tc.wantErr {
				assert.ErrorIs(t, err, auth.ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := auth.BearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	token, ok = auth.BearerToken("bearer  xyz ")
	assert.True(t, ok)
	assert.Equal(t, "xyz", token)

	_, ok = auth.BearerToken("Basic abc")
	assert.False(t, ok)

	_, ok = auth.BearerToken("Bearer ")
	assert.False(t, ok)
}

func TestIdentityContext(t *testing.T) {
	_, ok := auth.IdentityFromContext(context.Background())
	assert.False(t, ok)

	ctx := auth.WithIdentity(context.Background(), "driver@example.com")
	identity, ok := auth.IdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "driver@example.com", identity)
}
