package auth

import (
	"testing"
	"time"

	"clubhub/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndParseToken(t *testing.T) {
	authenticator := NewAuthenticator("test-secret")
	user := &repository.User{Id: 7, Permissions: []string{repository.PermissionExecutive}}

	token, err := authenticator.CreateToken(user, time.Hour)
	require.NoError(t, err)

	claims, err := authenticator.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserId)
	assert.Equal(t, []string{"executive"}, claims.Permissions)
	assert.True(t, claims.HasAnyPermission(repository.PermissionAdmin, repository.PermissionExecutive))
	assert.False(t, claims.HasAnyPermission(repository.PermissionAdmin))
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	token, err := NewAuthenticator("other-secret").CreateToken(&repository.User{Id: 1}, time.Hour)
	require.NoError(t, err)

	_, err = NewAuthenticator("test-secret").ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpiredToken(t *testing.T) {
	authenticator := NewAuthenticator("test-secret")
	token, err := authenticator.CreateToken(&repository.User{Id: 1}, -time.Minute)
	require.NoError(t, err)

	_, err = authenticator.ParseToken(token)
	assert.Error(t, err)
}
