package service

import (
	"context"
	"testing"
	"time"

	"github.com/eventnav/backend/internal/config"
	"github.com/eventnav/backend/internal/gateway"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims sessionClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() sessionClaims {
	return sessionClaims{
		Email: "me@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour)),
		},
	}
}

func newTestSessionService(secret string) *SessionService {
	svc := NewSessionService(config.SupabaseConfig{JWTSecret: secret})
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestParseAccessTokenVerified(t *testing.T) {
	token := signToken(t, "secret", validClaims())

	session, err := newTestSessionService("secret").ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, gateway.Session{AccessToken: token, UserID: "user-1", Email: "me@example.com"}, *session)
}

func TestParseAccessTokenRejects(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(fixedNow.Add(-time.Minute))
	noSubject := validClaims()
	noSubject.Subject = ""

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong-secret", token: signToken(t, "other", validClaims())},
		{name: "expired", token: signToken(t, "secret", expired)},
		{name: "no-subject", token: signToken(t, "secret", noSubject)},
	}

	svc := newTestSessionService("secret")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseAccessToken(tt.token)
			require.ErrorIs(t, err, gateway.ErrUnauthenticated)
		})
	}
}

func TestParseAccessTokenUnverified(t *testing.T) {
	svc := newTestSessionService("")
	assert.False(t, svc.Verifies())

	session, err := svc.ParseAccessToken(signToken(t, "anything", validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(fixedNow.Add(-time.Minute))
	_, err = svc.ParseAccessToken(signToken(t, "anything", expired))
	require.ErrorIs(t, err, gateway.ErrUnauthenticated)
}

func unsignedToken(t *testing.T, claims sessionClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return signed
}

func TestParseAccessTokenRejectsAlgNone(t *testing.T) {
	forged := validClaims()
	forged.Subject = "victim-user"
	token := unsignedToken(t, forged)

	for _, secret := range []string{"", "secret"} {
		_, err := newTestSessionService(secret).ParseAccessToken(token)
		require.ErrorIs(t, err, gateway.ErrUnauthenticated)
	}
}

func TestRequireVerification(t *testing.T) {
	require.ErrorIs(t, newTestSessionService("").RequireVerification(), gateway.ErrMisconfigured)
	require.NoError(t, newTestSessionService("secret").RequireVerification())

	// secret이 있으면 다른 키로 서명한 토큰은 거부
	forged := validClaims()
	forged.Subject = "victim-user"
	_, err := newTestSessionService("secret").ParseAccessToken(signToken(t, "attacker-chosen", forged))
	require.ErrorIs(t, err, gateway.ErrUnauthenticated)
}

func TestProvider(t *testing.T) {
	svc := newTestSessionService("secret")
	token := signToken(t, "secret", validClaims())
	ctx := context.Background()

	tests := []struct {
		name     string
		cfg      config.SessionConfig
		wantUser string
	}{
		{name: "no-token", cfg: config.SessionConfig{DevMode: true}},
		{name: "dev-mode-off", cfg: config.SessionConfig{AccessToken: token, UserID: "me"}},
		{name: "dev-mode-explicit-user", cfg: config.SessionConfig{AccessToken: token, UserID: "me", DevMode: true}, wantUser: "me"},
		{name: "dev-mode-token-subject", cfg: config.SessionConfig{AccessToken: token, DevMode: true}, wantUser: "user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok := svc.Provider(tt.cfg).CurrentUser(ctx)
			if tt.wantUser == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantUser, user.ID)
		})
	}

	// 요청 세션은 항상 우선
	reqCtx := gateway.WithSession(ctx, gateway.Session{AccessToken: "req", UserID: "caller"})
	user, ok := svc.Provider(config.SessionConfig{AccessToken: token, UserID: "me", DevMode: true}).CurrentUser(reqCtx)
	require.True(t, ok)
	assert.Equal(t, "caller", user.ID)
}
