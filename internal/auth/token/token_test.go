package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookable/pkg/model"
)

var testUser = model.User{
	ID:       "user-1",
	TenantID: "tenant-1",
	Name:     "John Doe",
	Email:    "employee@innovatecorp.com",
}

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("test-secret")

	signed, err := Generate(testUser, secret, time.Hour)
	require.NoError(t, err)

	claims, err := Parse(signed, secret)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, "employee@innovatecorp.com", claims.Email)
}

func TestParse_WrongSecret(t *testing.T) {
	signed, err := Generate(testUser, []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = Parse(signed, []byte("wrong-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	secret := []byte("test-secret")

	signed, err := Generate(testUser, secret, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(signed, secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse("not-a-token", []byte("test-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
