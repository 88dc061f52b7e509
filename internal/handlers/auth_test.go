package handlers

import (
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/AnshRaj112/cinnamon-backend/internal/services"
	"github.com/AnshRaj112/cinnamon-backend/pkg/utils"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	mr := setupRedis(t)
	mock := setupPostgres(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (id, username, password_hash, created_at, is_active)`)).
		WithArgs(sqlmock.AnyArg(), "alice", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	rec := do(t, http.MethodPost, "/api/auth/signup", "", SignupRequest{Username: "Alice", Password: "password123"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp AuthResponse
	decode(t, rec, &resp)
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Empty(t, resp.User.PasswordHash)
	assert.Equal(t, []int64{}, resp.User.Snippets)

	stored, err := mr.Get(services.SessionKeyPrefix + resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, stored)
}

func TestSignup_Rejections(t *testing.T) {
	t.Run("bad username", func(t *testing.T) {
		rec := do(t, http.MethodPost, "/api/auth/signup", "", SignupRequest{Username: "a!", Password: "password123"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ErrorResponse
		decode(t, rec, &resp)
		assert.Equal(t, "username", resp.Field)
	})

	t.Run("short password", func(t *testing.T) {
		rec := do(t, http.MethodPost, "/api/auth/signup", "", SignupRequest{Username: "alice", Password: "short"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ErrorResponse
		decode(t, rec, &resp)
		assert.Equal(t, "password", resp.Field)
	})

	t.Run("taken", func(t *testing.T) {
		mock := setupPostgres(t)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WillReturnError(&pq.Error{Code: "23505"})

		rec := do(t, http.MethodPost, "/api/auth/signup", "", SignupRequest{Username: "alice", Password: "password123"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func expectCredentials(t *testing.T, mock sqlmock.Sqlmock, password string) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE LOWER(username) = $1 AND is_active = TRUE`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "is_active"}).
			AddRow(aliceID, "alice", hash, time.Now(), true))
}

func TestSignin(t *testing.T) {
	setupRedis(t)
	mock := setupPostgres(t)

	expectCredentials(t, mock, "password123")
	rec := do(t, http.MethodPost, "/api/auth/signin", "", SigninRequest{Username: "ALICE", Password: "password123"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AuthResponse
	decode(t, rec, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, aliceID, resp.User.ID)

	expectCredentials(t, mock, "password123")
	rec = do(t, http.MethodPost, "/api/auth/signin", "", SigninRequest{Username: "alice", Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignin_UnknownUser(t *testing.T) {
	mock := setupPostgres(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE LOWER(username) = $1`)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "is_active"}))

	rec := do(t, http.MethodPost, "/api/auth/signin", "", SigninRequest{Username: "ghost", Password: "password123"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeAndSignout(t *testing.T) {
	setupRedis(t)
	mock := setupPostgres(t)
	auth := signIn(t, aliceID)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE u.id = $1 AND u.is_active = TRUE`)).
		WithArgs(aliceID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at", "is_active", "snippets"}).
			AddRow(aliceID, "alice", time.Now(), true, "{3,8}"))

	rec := do(t, http.MethodGet, "/api/auth/me", auth, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp AuthResponse
	decode(t, rec, &resp)
	assert.Equal(t, []int64{3, 8}, resp.User.Snippets)

	rec = do(t, http.MethodPost, "/api/auth/signout", auth, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, http.MethodGet, "/api/auth/me", auth, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsers(t *testing.T) {
	mock := setupPostgres(t)
	userCols := []string{"id", "username", "created_at", "is_active", "snippets"}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users WHERE is_active = TRUE`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY u.created_at ASC, u.id ASC`)).
		WithArgs(DefaultPageSize, 0).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(aliceID, "alice", time.Now(), true, "{1}").
			AddRow(bobID, "bob", time.Now(), true, "{}"))

	rec := do(t, http.MethodGet, "/users", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list ListUsersResponse
	decode(t, rec, &list)
	require.Len(t, list.Users, 2)
	assert.Equal(t, []int64{1}, list.Users[0].Snippets)
	assert.Equal(t, []int64{}, list.Users[1].Snippets)
	assert.False(t, list.HasMore)

	// Malformed ids never reach the database.
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodGet, "/users/not-a-uuid", "", nil).Code)
}
