package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medcrew/models"

	"github.com/go-redis/redis/v8"
)

const (
	// RegistrationSessionPrefix prefixes wizard session keys.
	RegistrationSessionPrefix = "regSession:"
	// submitLockPrefix prefixes the in-flight submit guard keys.
	submitLockPrefix = "regSubmit:"

	sessionTTL    = 30 * time.Minute
	submitLockTTL = 30 * time.Second
)

// SaveRegistrationSession saves the wizard session in Redis with a TTL.
func SaveRegistrationSession(ctx context.Context, client *redis.Client, sessionID string, session models.RegistrationSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal registration session: %w", err)
	}
	if err := client.Set(ctx, RegistrationSessionPrefix+sessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save registration session: %w", err)
	}
	return nil
}

// GetRegistrationSession retrieves the wizard session from Redis.
func GetRegistrationSession(ctx context.Context, client *redis.Client, sessionID string) (*models.RegistrationSession, error) {
	data, err := client.Get(ctx, RegistrationSessionPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	var session models.RegistrationSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal registration session: %w", err)
	}
	return &session, nil
}

// DeleteRegistrationSession removes a wizard session from Redis.
func DeleteRegistrationSession(ctx context.Context, client *redis.Client, sessionID string) error {
	return client.Del(ctx, RegistrationSessionPrefix+sessionID).Err()
}

// acquireSubmitLock marks a submit as in flight. It returns false when a
// prior submit on the session has not resolved yet.
func acquireSubmitLock(ctx context.Context, client *redis.Client, sessionID string) (bool, error) {
	return client.SetNX(ctx, submitLockPrefix+sessionID, "1", submitLockTTL).Result()
}

// releaseSubmitLock clears the in-flight marker once the submit resolves.
func releaseSubmitLock(ctx context.Context, client *redis.Client, sessionID string) {
	_ = client.Del(ctx, submitLockPrefix+sessionID).Err()
}
