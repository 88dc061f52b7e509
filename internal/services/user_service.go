package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AnshRaj112/cinnamon-backend/internal/database"
	"github.com/AnshRaj112/cinnamon-backend/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username is already taken")
)

// uniqueViolation is the PostgreSQL SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

// CreateUser inserts an active account. username must already be normalized.
func CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		IsActive:     true,
		PasswordHash: passwordHash,
		Snippets:     []int64{},
	}

	err := database.PostgresDB.QueryRowContext(ctx, `
		INSERT INTO users (id, username, password_hash, created_at, is_active)
		VALUES ($1, $2, $3, NOW(), TRUE)
		RETURNING created_at
	`, user.ID, username, passwordHash).Scan(&user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// GetUserByUsername loads the credentials row used for sign in.
func GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := database.PostgresDB.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at, is_active
		FROM users WHERE LOWER(username) = $1 AND is_active = TRUE
	`, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt, &user.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

const userColumns = `
	SELECT u.id, u.username, u.created_at, u.is_active,
		COALESCE(array_agg(s.id ORDER BY s.id) FILTER (WHERE s.id IS NOT NULL), '{}') AS snippets
	FROM users u
	LEFT JOIN snippets s ON s.owner_id = u.id`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	var snippets pq.Int64Array
	if err := row.Scan(&user.ID, &user.Username, &user.CreatedAt, &user.IsActive, &snippets); err != nil {
		return nil, err
	}
	user.Snippets = []int64(snippets)
	if user.Snippets == nil {
		user.Snippets = []int64{}
	}
	return &user, nil
}

// GetUser returns an active user with the IDs of the snippets they own.
func GetUser(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrUserNotFound
	}

	row := database.PostgresDB.QueryRowContext(ctx, userColumns+`
		WHERE u.id = $1 AND u.is_active = TRUE
		GROUP BY u.id`, id)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// ListUsers returns a page of active users ordered by sign-up time, and the
// total number of active users.
func ListUsers(ctx context.Context, limit, skip int) ([]models.User, int64, error) {
	var total int64
	if err := database.PostgresDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE is_active = TRUE`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := database.PostgresDB.QueryContext(ctx, userColumns+`
		WHERE u.is_active = TRUE
		GROUP BY u.id
		ORDER BY u.created_at ASC, u.id ASC
		LIMIT $1 OFFSET $2`, limit, skip)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *user)
	}
	return users, total, rows.Err()
}

// GetUsernameByID resolves the display name of an active user.
func GetUsernameByID(ctx context.Context, userID string) (string, error) {
	var username string
	err := database.PostgresDB.QueryRowContext(ctx, `
		SELECT username FROM users WHERE id = $1 AND is_active = TRUE
	`, userID).Scan(&username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrUserNotFound
	}
	return username, err
}
