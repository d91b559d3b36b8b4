package handler

import (
	"net/http"
	"testing"

	"gamevault/backend/internal/models"
	"gamevault/backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginAndMe(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/register", "", RegisterInput{
		Nickname: "newbie",
		Email:    "newbie@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token := decode[TokenResponse](t, w).Token
	_, err := jwt.ParseToken(token, testSecret)
	require.NoError(t, err)

	w = env.do(t, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[PrivateUserResponse](t, w)
	assert.Equal(t, "newbie", me.Nickname)
	assert.Equal(t, "user", me.Role)

	// New accounts cannot publish.
	w = env.do(t, http.MethodPost, "/api/v1/admin/games", token, GameInput{Title: "Hades"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/auth/login", "", LoginInput{Login: "newbie@example.com", Password: "password123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[TokenResponse](t, w).Token)
}

func TestRegister_Errors(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/register", "", RegisterInput{Nickname: "x", Email: "not-an-email", Password: "password123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/auth/register", "", RegisterInput{Nickname: "admin", Email: "other@example.com", Password: "password123"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)

	for _, in := range []LoginInput{
		{Login: "player", Password: "wrong-password"},
		{Login: "nobody", Password: "password123"},
	} {
		w := env.do(t, http.MethodPost, "/api/v1/auth/login", "", in)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decode[ErrorResponse](t, w).Error)
	}
}

func TestLogin_StoreFailureIsNotReportedAsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Migrator().DropTable(&models.User{}))

	w := env.do(t, http.MethodPost, "/api/v1/auth/login", "", LoginInput{Login: "player", Password: "password123"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to log in", decode[ErrorResponse](t, w).Error)
}

func TestMe_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/users/me", env.userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "player", decode[PrivateUserResponse](t, w).Nickname)
}
