package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"crewpulse/config"
	"crewpulse/models"
)

func TestJWTGenerateParseRoundTrip(t *testing.T) {
	config.AppConfig = config.Config{JWTSecret: "unit-test-secret"}

	user := models.User{
		Model:        gorm.Model{ID: 42},
		TokenVersion: 3,
	}

	access, refresh, err := GenerateJWTToken(&user)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := ParseJWTToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.True(t, claims.ExpiresAt.After(time.Now()))

	refreshClaims, err := ParseJWTToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, uint(42), refreshClaims.UserID)
	// The refresh token outlives the access token.
	assert.True(t, refreshClaims.ExpiresAt.After(claims.ExpiresAt.Time))
}

func TestJWTParseRejectsWrongSecret(t *testing.T) {
	config.AppConfig = config.Config{JWTSecret: "unit-test-secret"}
	access, _, err := GenerateJWTToken(&models.User{Model: gorm.Model{ID: 7}})
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "rotated-secret"
	_, err = ParseJWTToken(access)
	assert.Error(t, err)
}

func TestJWTParseRejectsGarbage(t *testing.T) {
	config.AppConfig = config.Config{JWTSecret: "unit-test-secret"}
	_, err := ParseJWTToken("not-a-token")
	assert.Error(t, err)
}
