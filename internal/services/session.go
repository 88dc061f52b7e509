package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/AnshRaj112/cinnamon-backend/internal/database"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// SessionDuration is 7 days
	SessionDuration = 7 * 24 * time.Hour
	// SessionKeyPrefix maps a token to its user ID
	SessionKeyPrefix = "session:"
	// UserSessionKeyPrefix maps a user ID to its current token
	UserSessionKeyPrefix = "user_session:"
)

// CreateSession issues a new token for userID. A user holds one session at a
// time, so signing in again revokes the previous token and restarts the 7 days.
func CreateSession(ctx context.Context, userID uuid.UUID) (string, error) {
	if err := InvalidateUserSessions(ctx, userID); err != nil {
		return "", err
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	pipe := database.RedisClient.TxPipeline()
	pipe.Set(ctx, SessionKeyPrefix+token, userID.String(), SessionDuration)
	pipe.Set(ctx, UserSessionKeyPrefix+userID.String(), token, SessionDuration)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// ValidateSession returns the user behind token. ok is false for unknown or
// expired tokens.
func ValidateSession(ctx context.Context, token string) (userID uuid.UUID, ok bool, err error) {
	if token == "" {
		return uuid.Nil, false, nil
	}

	raw, err := database.RedisClient.Get(ctx, SessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}

	userID, err = uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, err
	}
	return userID, true, nil
}

// InvalidateSession removes a session from Redis
func InvalidateSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	sessionKey := SessionKeyPrefix + token
	userID, err := database.RedisClient.Get(ctx, sessionKey).Result()
	if err == nil && userID != "" {
		database.RedisClient.Del(ctx, UserSessionKeyPrefix+userID)
	}

	return database.RedisClient.Del(ctx, sessionKey).Err()
}

// InvalidateUserSessions drops whatever session userID currently holds.
func InvalidateUserSessions(ctx context.Context, userID uuid.UUID) error {
	userSessionKey := UserSessionKeyPrefix + userID.String()

	token, err := database.RedisClient.Get(ctx, userSessionKey).Result()
	if err == nil && token != "" {
		database.RedisClient.Del(ctx, SessionKeyPrefix+token)
	}

	return database.RedisClient.Del(ctx, userSessionKey).Err()
}
