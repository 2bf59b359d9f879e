package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectToken(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@b.com",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	info, err := InspectToken(signed)
	require.NoError(t, err)

	assert.Equal(t, "a@b.com", info.Subject)
	assert.True(t, info.ExpiresAt.Equal(exp), "want %s, got %s", exp, info.ExpiresAt)
}

func TestInspectTokenOpaque(t *testing.T) {
	_, err := InspectToken("not-a-jwt")
	assert.Error(t, err)
}
