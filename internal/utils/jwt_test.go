package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-sign-key"

func TestSignClaims_ParseClaims_RoundTrip(t *testing.T) {
	claims := NewTokenClaims("alice", models.TokenKindAccess, 30*time.Minute)
	claims.Roles = []models.RoleClaim{{Name: "user"}}
	claims.FirstName = "Alice"
	claims.LastName = "Liddell"

	tokenString, err := SignClaims(claims, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsed, err := ParseClaims(tokenString, testSignKey)
	require.NoError(t, err)

	assert.Equal(t, "alice", parsed.Subject)
	assert.Equal(t, models.TokenKindAccess, parsed.Kind)
	assert.Equal(t, []models.RoleClaim{{Name: "user"}}, parsed.Roles)
	assert.Equal(t, "Alice", parsed.FirstName)
	assert.Equal(t, "Liddell", parsed.LastName)
}

func TestSignClaims_EmptySignKey(t *testing.T) {
	claims := NewTokenClaims("alice", models.TokenKindAccess, time.Minute)

	_, err := SignClaims(claims, "")
	require.Error(t, err)
}

func TestNewTokenClaims_ExpirySetFromTTL(t *testing.T) {
	ttl := 30 * time.Minute
	claims := NewTokenClaims("alice", models.TokenKindAccess, ttl)

	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	// jwt.NewNumericDate keeps whole seconds, so compare with 1s tolerance
	assert.WithinDuration(t, time.Now().Add(ttl), claims.ExpiresAt.Time, time.Second)
	assert.WithinDuration(t, claims.IssuedAt.Time.Add(ttl), claims.ExpiresAt.Time, time.Second)
}

func TestParseClaims_WrongKey(t *testing.T) {
	claims := NewTokenClaims("alice", models.TokenKindRefresh, time.Hour)
	tokenString, err := SignClaims(claims, testSignKey)
	require.NoError(t, err)

	_, err = ParseClaims(tokenString, "another-key")
	require.Error(t, err)
}

func TestParseClaims_Malformed(t *testing.T) {
	_, err := ParseClaims("not-a-jwt-token", testSignKey)
	require.Error(t, err)
}

func TestParseClaims_ExpiryBoundary(t *testing.T) {
	// One second of remaining lifetime parses fine.
	live := NewTokenClaims("alice", models.TokenKindAccess, time.Second)
	liveToken, err := SignClaims(live, testSignKey)
	require.NoError(t, err)

	_, err = ParseClaims(liveToken, testSignKey)
	assert.NoError(t, err)

	// A token that expired one second ago is rejected.
	expired := NewTokenClaims("alice", models.TokenKindAccess, -time.Second)
	expiredToken, err := SignClaims(expired, testSignKey)
	require.NoError(t, err)

	_, err = ParseClaims(expiredToken, testSignKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseClaims_RejectsForeignAlgorithm(t *testing.T) {
	// "none"-signed tokens must never pass, whatever the payload says.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, NewTokenClaims("alice", models.TokenKindAccess, time.Hour))
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseClaims(tokenString, testSignKey)
	require.Error(t, err)
}

func TestParseClaims_KindSurvivesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kind string
	}{
		{"access token", models.TokenKindAccess},
		{"refresh token", models.TokenKindRefresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, err := SignClaims(NewTokenClaims("bob", tt.kind, time.Hour), testSignKey)
			require.NoError(t, err)

			parsed, err := ParseClaims(tokenString, testSignKey)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, parsed.Kind)
		})
	}
}
