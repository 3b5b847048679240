package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mestore/mestore-backend/pkg/config"
	"github.com/mestore/mestore-backend/pkg/enums"
)

var testJWT = config.JWTConfig{
	Secret:            "unit-test-secret",
	Issuer:            "mestore-test",
	ExpirationMinutes: 60,
}

func TestMintAndParseRoundTrip(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	signed, err := MintAccessToken(testJWT, now, AccessTokenPayload{
		UserID: userID,
		Role:   enums.UserRoleAgent,
	})
	require.NoError(t, err)

	claims, err := ParseAccessToken(testJWT, signed)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, enums.UserRoleAgent, claims.Role)
	assert.Equal(t, "mestore-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "jti must be populated")
}

func TestMintRejectsInvalidRole(t *testing.T) {
	_, err := MintAccessToken(testJWT, time.Now(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRole("superuser"),
	})
	assert.Error(t, err)
}

func TestMintPreservesSuppliedJTI(t *testing.T) {
	signed, err := MintAccessToken(testJWT, time.Now(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRoleAdmin,
		JTI:    "fixed-session-id",
	})
	require.NoError(t, err)

	claims, err := ParseAccessToken(testJWT, signed)
	require.NoError(t, err)
	assert.Equal(t, "fixed-session-id", claims.ID)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	signed, err := MintAccessToken(testJWT, time.Now().Add(-2*time.Hour), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRoleAgent,
	})
	require.NoError(t, err)

	_, err = ParseAccessToken(testJWT, signed)
	assert.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	other := testJWT
	other.Issuer = "someone-else"
	signed, err := MintAccessToken(other, time.Now(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRoleAgent,
	})
	require.NoError(t, err)

	_, err = ParseAccessToken(testJWT, signed)
	assert.Error(t, err)
}
