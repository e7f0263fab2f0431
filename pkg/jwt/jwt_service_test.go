package jwt

import (
	"testing"

	"barnmonitor-backend/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := svc.GenerateSessionToken("6f1c6c2e-7c55-4b59-8a0b-1f3f2f1d4c11")
	require.NoError(t, err)

	sid, err := svc.GetSessionIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "6f1c6c2e-7c55-4b59-8a0b-1f3f2f1d4c11", sid)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret").GenerateSessionToken("abc")
	require.NoError(t, err)

	_, err = NewJWTService("other").GetSessionIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := NewJWTService("secret").GetSessionIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestSessionTokenRejectsNoneAlgorithm(t *testing.T) {
	claims := jwtSessionClaim{SessionID: "abc"}
	claims.Issuer = "BARNMONITOR"
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTService("secret").GetSessionIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
