package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dgamboa/foodtrucks-backend/entity"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &entity.User{ID: 42, Username: "amy"}

	token, err := GenerateToken(user, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "amy", claims.Username)
}

func TestParseTokenBadSignature(t *testing.T) {
	user := &entity.User{ID: 42, Username: "amy"}

	token, err := GenerateToken(user, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	require.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	user := &entity.User{ID: 42, Username: "amy"}

	token, err := GenerateToken(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	require.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", "secret")
	require.Error(t, err)
}
