package utils

import (
	"testing"
	"time"

	"hospital/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = "" })

	token, err := GenerateToken("doc-1", "doctor", time.Hour)
	require.NoError(t, err)

	sub, role, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", sub)
	assert.Equal(t, "doctor", role)
}

func TestExtractClaimsRejectsExpiredAndForeignTokens(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = "" })

	expired, err := GenerateToken("doc-1", "doctor", -time.Minute)
	require.NoError(t, err)
	_, _, err = ExtractClaims(expired)
	assert.Error(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	foreign, err := GenerateToken("doc-1", "doctor", time.Hour)
	require.NoError(t, err)
	config.AppConfig.JWTSecret = "test-secret"
	_, _, err = ExtractClaims(foreign)
	assert.Error(t, err)
}

func TestExtractClaimsRequiresRole(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = "" })

	token, err := GenerateToken("doc-1", "", time.Hour)
	require.NoError(t, err)
	_, _, err = ExtractClaims(token)
	assert.Error(t, err)
}
