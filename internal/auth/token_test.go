package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyUserToken(t *testing.T) {
	svc := NewTokenService("test-jwt-secret-key-32-characters")

	token, err := svc.Issue(UserClaims(42), time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	role, err := ExtractRole(claims)
	require.NoError(t, err)
	assert.Equal(t, RoleStudent, role)

	uid, err := ExtractUserID(claims)
	require.NoError(t, err)
	assert.Equal(t, uint(42), uid)
}

func TestAdminTokenHasNoUserID(t *testing.T) {
	svc := NewTokenService("test-jwt-secret-key-32-characters")

	token, err := svc.Issue(AdminClaims(), 2*time.Hour)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	role, err := ExtractRole(claims)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = ExtractUserID(claims)
	assert.Error(t, err, "admin tokens must not satisfy user-scoped routes")
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-jwt-secret-key-32-characters")

	token, err := svc.Issue(AdminClaims(), -time.Minute)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one")
	verifier := NewTokenService("secret-two")

	token, err := issuer.Issue(UserClaims(7), time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsNoneAlgorithm(t *testing.T) {
	svc := NewTokenService("test-jwt-secret-key-32-characters")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"role": RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-jwt-secret-key-32-characters")

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestIssueIgnoresCallerSuppliedExpiry(t *testing.T) {
	svc := NewTokenService("test-jwt-secret-key-32-characters")

	// A caller cannot smuggle a far-future exp through the claims argument.
	claims := jwt.MapClaims{
		"role": RoleAdmin,
		"exp":  time.Now().Add(100 * 24 * time.Hour).Unix(),
	}
	token, err := svc.Issue(claims, time.Minute)
	require.NoError(t, err)

	verified, err := svc.Verify(token)
	require.NoError(t, err)

	exp, err := verified.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), exp.Time, 10*time.Second)
}
