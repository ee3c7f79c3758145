package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curio-app/curio/internal/common"
)

func TestRegister_Success(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	user, err := env.auth.Register(ctx, "Alice@X.com", "password1", "password1")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", user.Email)
	assert.NotEqual(t, "password1", user.PasswordHash)
}

func TestRegister_ValidationOrder(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		confirm  string
		wantMsg  string
	}{
		{"missing email", "", "password1", "password1", "all fields are required"},
		{"missing password", "a@x.com", "", "password1", "all fields are required"},
		{"missing confirmation", "a@x.com", "password1", "", "all fields are required"},
		{"bad email format", "not-an-email", "password1", "password1", "invalid email format"},
		{"mismatch wins over length", "a@x.com", "short", "other", "passwords do not match"},
		{"short password", "a@x.com", "short", "short", "password must be at least 8 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupEnv(t)
			_, err := env.auth.Register(context.Background(), tt.email, tt.password, tt.confirm)
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, "alice@x.com", "password1", "password1")
	require.NoError(t, err)

	_, err = env.auth.Register(ctx, "ALICE@x.com", "password2", "password2")
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), "email already registered")
}

func TestLogin_RoundTrip(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, "alice@x.com", "password1", "password1")
	require.NoError(t, err)

	s, err := env.auth.Login(ctx, "  Alice@X.com ", "password1")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", s.Email)
	assert.True(t, env.auth.IsAuthenticated(ctx))
	assert.Equal(t, "alice@x.com", env.auth.CurrentUserEmail(ctx))
}

func TestLogin_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, "alice@x.com", "password1", "password1")
	require.NoError(t, err)

	_, errWrongPw := env.auth.Login(ctx, "alice@x.com", "wrong-password")
	_, errUnknown := env.auth.Login(ctx, "nobody@x.com", "password1")

	require.ErrorIs(t, errWrongPw, common.ErrInvalidCredentials)
	require.ErrorIs(t, errUnknown, common.ErrInvalidCredentials)
	assert.Equal(t, errWrongPw.Error(), errUnknown.Error())
}

func TestLogin_ReplacesPriorSession(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	env.registerAndLogin(t, "alice@x.com", "password1")
	env.registerAndLogin(t, "bob@x.com", "password2")

	assert.Equal(t, "bob@x.com", env.auth.CurrentUserEmail(ctx))
}

func TestLogout_Idempotent(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	env.registerAndLogin(t, "alice@x.com", "password1")

	require.NoError(t, env.auth.Logout(ctx))
	require.NoError(t, env.auth.Logout(ctx))

	assert.False(t, env.auth.IsAuthenticated(ctx))
	assert.Equal(t, "", env.auth.CurrentUserEmail(ctx))
}
