package services

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/AnshRaj112/cinnamon-backend/internal/database"
	"github.com/AnshRaj112/cinnamon-backend/internal/models"
	"github.com/AnshRaj112/cinnamon-backend/pkg/utils"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerID = "0d6f8a62-3c1e-4f7e-9b55-2a9c7e1d4b10"

func setupPostgres(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	database.PostgresDB = db
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return mock
}

// renderedHTML matches a highlighted document containing every fragment.
type renderedHTML []string

func (r renderedHTML) Match(v driver.Value) bool {
	doc, ok := v.(string)
	if !ok || !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		return false
	}
	for _, fragment := range r {
		if !strings.Contains(doc, fragment) {
			return false
		}
	}
	return true
}

func TestSaveSnippet_InsertRendersHighlight(t *testing.T) {
	mock := setupPostgres(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO snippets (created, title, code, linenos, language, style, owner_id, highlighted)`)).
		WithArgs(sqlmock.AnyArg(), "", "print(1)", false, "python", "friendly", ownerID, renderedHTML{`<span class="nb">print</span>`}).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	s := &models.Snippet{Code: "print(1)", OwnerID: ownerID}
	require.NoError(t, SaveSnippet(context.Background(), s))

	assert.Equal(t, int64(42), s.ID)
	assert.Equal(t, "python", s.Language)
	assert.Equal(t, "friendly", s.Style)
	assert.False(t, s.Created.IsZero())
	assert.Equal(t, s.Created.Truncate(time.Microsecond), s.Created, "created must round-trip through TIMESTAMP")
	assert.Equal(t, "/snippets/42/highlight", s.Highlight)
	assert.NotEmpty(t, s.Highlighted)
}

func TestSaveSnippet_UpdateRecomputesHighlight(t *testing.T) {
	mock := setupPostgres(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE snippets`)).
		WithArgs("Deploy", "echo hi", true, "bash", "monokai", renderedHTML{"<h2>Deploy</h2>", `class="lntable"`}, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := &models.Snippet{
		ID:          7,
		Title:       "Deploy",
		Code:        "echo hi",
		Linenos:     true,
		Language:    "bash",
		Style:       "monokai",
		Highlighted: "stale",
	}
	require.NoError(t, SaveSnippet(context.Background(), s))
	assert.NotEqual(t, "stale", s.Highlighted)
}

func TestSaveSnippet_UpdateMissingRow(t *testing.T) {
	mock := setupPostgres(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE snippets`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := SaveSnippet(context.Background(), &models.Snippet{ID: 99, Code: "x = 1"})
	assert.ErrorIs(t, err, ErrSnippetNotFound)
}

func TestSaveSnippet_ValidationStopsBeforeWrite(t *testing.T) {
	setupPostgres(t) // no expectations: nothing may reach the database

	err := SaveSnippet(context.Background(), &models.Snippet{Code: "x", Language: "brainfudge-9000"})

	var verr *utils.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "language", verr.Field)
}

func TestGetSnippet(t *testing.T) {
	mock := setupPostgres(t)
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE s.id = $1`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created", "title", "code", "linenos", "language", "style", "owner_id", "username", "highlighted"}).
			AddRow(int64(3), created, "hello", "print('hi')", false, "python", "friendly", ownerID, "alice", "<html/>"))

	s, err := GetSnippet(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "alice", s.Owner)
	assert.Equal(t, created, s.Created)
	assert.Equal(t, "/snippets/3/highlight", s.Highlight)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE s.id = $1`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = GetSnippet(context.Background(), 4)
	assert.ErrorIs(t, err, ErrSnippetNotFound)
}

func TestListSnippets_AscendingByCreated(t *testing.T) {
	mock := setupPostgres(t)
	cols := []string{"id", "created", "title", "code", "linenos", "language", "style", "owner_id", "username", "highlighted"}
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM snippets`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY s.created ASC, s.id ASC`)).
		WithArgs(2, 0).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(1), t1, "", "a", false, "python", "friendly", ownerID, "alice", "").
			AddRow(int64(2), t1.Add(time.Hour), "", "b", false, "go", "friendly", ownerID, "alice", ""))

	snippets, total, err := ListSnippets(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, snippets, 2)
	assert.True(t, snippets[0].Created.Before(snippets[1].Created))
}

func TestDeleteSnippet(t *testing.T) {
	mock := setupPostgres(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM snippets WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM snippets WHERE id = $1`)).
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, DeleteSnippet(context.Background(), 5))
	assert.ErrorIs(t, DeleteSnippet(context.Background(), 6), ErrSnippetNotFound)
}
