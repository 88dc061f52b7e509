package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AnshRaj112/cinnamon-backend/internal/database"
	"github.com/AnshRaj112/cinnamon-backend/internal/highlight"
	"github.com/AnshRaj112/cinnamon-backend/internal/metrics"
	"github.com/AnshRaj112/cinnamon-backend/internal/models"
)

var ErrSnippetNotFound = errors.New("snippet not found")

// SaveSnippet is the only write path for snippets. It validates the fields,
// re-renders highlighted from the current code and options, then inserts
// (ID == 0) or updates the row. created and owner never change on update.
func SaveSnippet(ctx context.Context, s *models.Snippet) error {
	s.ApplyDefaults()
	if err := models.Validate(s); err != nil {
		return err
	}

	started := time.Now()
	highlighted, err := highlight.Render(s.Code, s.HighlightOptions())
	metrics.HighlightDuration.WithLabelValues(s.Language).Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.HighlightFailures.Inc()
		return fmt.Errorf("render snippet: %w", err)
	}
	s.Highlighted = highlighted

	if s.ID == 0 {
		err = insertSnippet(ctx, s)
	} else {
		err = updateSnippet(ctx, s)
	}
	if err != nil {
		return err
	}
	s.Highlight = s.HighlightURL()
	return nil
}

func insertSnippet(ctx context.Context, s *models.Snippet) error {
	s.Created = time.Now().UTC().Truncate(time.Microsecond)
	err := database.PostgresDB.QueryRowContext(ctx, `
		INSERT INTO snippets (created, title, code, linenos, language, style, owner_id, highlighted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, s.Created, s.Title, s.Code, s.Linenos, s.Language, s.Style, s.OwnerID, s.Highlighted).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert snippet: %w", err)
	}
	return nil
}

func updateSnippet(ctx context.Context, s *models.Snippet) error {
	res, err := database.PostgresDB.ExecContext(ctx, `
		UPDATE snippets
		SET title = $1, code = $2, linenos = $3, language = $4, style = $5, highlighted = $6
		WHERE id = $7
	`, s.Title, s.Code, s.Linenos, s.Language, s.Style, s.Highlighted, s.ID)
	if err != nil {
		return fmt.Errorf("update snippet: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSnippetNotFound
	}
	return nil
}

const snippetColumns = `
	SELECT s.id, s.created, s.title, s.code, s.linenos, s.language, s.style,
		s.owner_id, u.username, s.highlighted
	FROM snippets s
	JOIN users u ON u.id = s.owner_id`

func scanSnippet(row rowScanner) (*models.Snippet, error) {
	var s models.Snippet
	err := row.Scan(&s.ID, &s.Created, &s.Title, &s.Code, &s.Linenos, &s.Language, &s.Style,
		&s.OwnerID, &s.Owner, &s.Highlighted)
	if err != nil {
		return nil, err
	}
	s.Highlight = s.HighlightURL()
	return &s, nil
}

func GetSnippet(ctx context.Context, id int64) (*models.Snippet, error) {
	row := database.PostgresDB.QueryRowContext(ctx, snippetColumns+` WHERE s.id = $1`, id)
	s, err := scanSnippet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnippetNotFound
	}
	return s, err
}

// ListSnippets returns a page of snippets in ascending creation order and
// the total count.
func ListSnippets(ctx context.Context, limit, skip int) ([]models.Snippet, int64, error) {
	var total int64
	if err := database.PostgresDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM snippets`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := database.PostgresDB.QueryContext(ctx, snippetColumns+`
		ORDER BY s.created ASC, s.id ASC
		LIMIT $1 OFFSET $2`, limit, skip)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	snippets := []models.Snippet{}
	for rows.Next() {
		s, err := scanSnippet(rows)
		if err != nil {
			return nil, 0, err
		}
		snippets = append(snippets, *s)
	}
	return snippets, total, rows.Err()
}

func DeleteSnippet(ctx context.Context, id int64) error {
	res, err := database.PostgresDB.ExecContext(ctx, `DELETE FROM snippets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSnippetNotFound
	}
	return nil
}
