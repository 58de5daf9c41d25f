package jwt

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")

	token, expiresAt, err := svc.GenerateAccessToken("emp-1", "alice@example.com", user.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotZero(t, expiresAt)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), decoded, nil)
	identity, err := IdentityFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, Identity{EmployeeID: "emp-1", Email: "alice@example.com", Role: user.RoleManager}, identity)
}

func TestGenerateAccessToken_BadDuration(t *testing.T) {
	svc := NewJWTService("test-secret", "soon")

	_, _, err := svc.GenerateAccessToken("emp-1", "alice@example.com", user.RoleEmployee)
	assert.Error(t, err)
}

func TestIdentityFromContext_MissingClaims(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")
	ja := svc.JWTAuth()

	_, err := IdentityFromContext(context.Background())
	assert.Error(t, err)

	tok, _, err := ja.Encode(map[string]interface{}{"role": "employee", "type": "access"})
	require.NoError(t, err)
	_, err = IdentityFromContext(jwtauth.NewContext(context.Background(), tok, nil))
	assert.ErrorIs(t, err, user.ErrEmployeeClaimMissing)

	tok, _, err = ja.Encode(map[string]interface{}{"employee_id": "emp-1", "role": "owner", "type": "access"})
	require.NoError(t, err)
	_, err = IdentityFromContext(jwtauth.NewContext(context.Background(), tok, nil))
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}
