package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/triager/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func registerForm(username, email, password, confirm string) url.Values {
	return url.Values{
		"form":             {"register"},
		"username":         {username},
		"email":            {email},
		"password":         {password},
		"confirm_password": {confirm},
	}
}

func TestRegisterSuccess(t *testing.T) {
	env := setupTestEnv(t)

	w := env.postForm(t, "/", registerForm("alice", "a@x.com", "pw1", "pw1"), nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	var user models.User
	require.NoError(t, env.db.Where("username = ?", "alice").First(&user).Error)
	require.Equal(t, "a@x.com", user.Email)

	// Stored as a hash, never plaintext.
	require.NotEqual(t, "pw1", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")))
}

func TestRegisterPasswordMismatch(t *testing.T) {
	env := setupTestEnv(t)

	env.postForm(t, "/", registerForm("alice", "a@x.com", "pw1", "pw2"), nil)

	var count int64
	env.db.Model(&models.User{}).Count(&count)
	require.Zero(t, count)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "alice", "a@x.com", "pw1")

	env.postForm(t, "/", registerForm("alice", "other@x.com", "pw2", "pw2"), nil)

	var count int64
	env.db.Model(&models.User{}).Count(&count)
	require.EqualValues(t, 1, count)

	// The existing account is untouched.
	var user models.User
	require.NoError(t, env.db.Where("username = ?", "alice").First(&user).Error)
	require.Equal(t, "a@x.com", user.Email)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "alice", "a@x.com", "pw1")

	env.postForm(t, "/", registerForm("bob", "a@x.com", "pw2", "pw2"), nil)

	var count int64
	env.db.Model(&models.User{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestRegisterInvalidEmail(t *testing.T) {
	env := setupTestEnv(t)

	env.postForm(t, "/", registerForm("alice", "not-an-email", "pw1", "pw1"), nil)

	var count int64
	env.db.Model(&models.User{}).Count(&count)
	require.Zero(t, count)
}

func TestRegisterBlankFields(t *testing.T) {
	env := setupTestEnv(t)

	env.postForm(t, "/", registerForm("", "a@x.com", "pw1", "pw1"), nil)

	var count int64
	env.db.Model(&models.User{}).Count(&count)
	require.Zero(t, count)
}

func TestLoginSuccess(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "alice", "a@x.com", "pw1")

	cookies := env.login(t, "alice", "pw1")

	w := env.get(t, "/dashboard", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "alice")
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "alice", "a@x.com", "pw1")

	form := url.Values{
		"form":     {"login"},
		"username": {"alice"},
		"password": {"wrong"},
	}
	w := env.postForm(t, "/", form, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
}

func TestLoginUnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	form := url.Values{
		"form":     {"login"},
		"username": {"nobody"},
		"password": {"pw1"},
	}
	w := env.postForm(t, "/", form, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
}

func TestLogoutEndsSession(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "alice", "a@x.com", "pw1")
	cookies := env.login(t, "alice", "pw1")

	w := env.get(t, "/logout", cookies)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	// The cleared cookie from the logout response no longer authenticates.
	w = env.get(t, "/dashboard", w.Result().Cookies())
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	env := setupTestEnv(t)

	for _, path := range []string{
		"/dashboard",
		"/new_report",
		"/report/1",
		"/logout",
		"/delete_task/1",
		"/complete_task/1",
		"/delete_report/1",
		"/task_list",
		"/task/1",
		"/account_settings",
	} {
		w := env.get(t, path, nil)
		require.Equal(t, http.StatusSeeOther, w.Code, "path %s", path)
		require.Equal(t, "/", w.Header().Get("Location"), "path %s", path)
	}
}
