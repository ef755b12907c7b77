package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// signingMethod is the only algorithm this service ever signs or accepts.
// A token presented with any other "alg" header is rejected during parsing.
var signingMethod = jwt.SigningMethodHS256

// SignClaims signs the given claim set with HMAC-SHA256 and returns the
// compact JWS serialization (header.payload.signature).
//
// Returns an error if signKey is empty or signing fails.
func SignClaims(claims models.TokenClaims, signKey string) (string, error) {
	if signKey == "" {
		return "", errors.New("empty token sign key")
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ParseClaims validates the given JWT string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Algorithm check: only HMAC-SHA256 tokens are accepted
//   - Expiration (exp) claim check against the current time
//
// The token kind ("access" vs "refresh") is NOT checked here — a valid
// signature says nothing about what the token is for. Callers must inspect
// [models.TokenClaims.Kind] themselves.
//
// Returns the decoded claims on success, or a non-nil error if verification
// fails for any reason (bad signature, wrong algorithm, malformed, expired).
func ParseClaims(tokenString, signKey string) (models.TokenClaims, error) {
	var claims models.TokenClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{signingMethod.Alg()}))
	if err != nil {
		return models.TokenClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claims, nil
}

// NewTokenClaims assembles a claim set for the given subject and kind with
// expiry = now + ttl. Role and name fields are left for the caller to fill
// for access tokens.
func NewTokenClaims(subject, kind string, ttl time.Duration) models.TokenClaims {
	now := time.Now()
	return models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Kind: kind,
	}
}
