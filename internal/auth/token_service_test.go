package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", DefaultTokenTTL)

	token, err := svc.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenServiceExpired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Nanosecond)

	token, err := svc.Generate(42)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenServiceTampered(t *testing.T) {
	svc := NewTokenService("test-secret", DefaultTokenTTL)

	token, err := svc.Generate(42)
	require.NoError(t, err)

	_, err = svc.Verify(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenServiceWrongSecret(t *testing.T) {
	issuer := NewTokenService("test-secret", DefaultTokenTTL)
	verifier := NewTokenService("other-secret", DefaultTokenTTL)

	token, err := issuer.Generate(42)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenServiceDefaultTTL(t *testing.T) {
	svc := NewTokenService("test-secret", 0)
	assert.Equal(t, DefaultTokenTTL, svc.TTL())
	assert.Equal(t, float64(600), svc.TTL().Seconds())
}
