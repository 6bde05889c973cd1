package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"medcrew/models"

	"github.com/go-redis/redis/v8"
)

const (
	// DocumentSetPrefix prefixes the durable staged-set keys. Entries carry
	// no TTL: an upload session survives client restarts until submitted.
	DocumentSetPrefix = "profileDocs:"
	// checklistStepPrefix prefixes the checklist position keys.
	checklistStepPrefix = "profileStep:"
	// submitLockPrefix prefixes the in-flight submission guard keys.
	submitLockPrefix = "profileSubmit:"

	checklistStepTTL = 24 * time.Hour
	// submitLockTTL bounds the guard; uploads of a full set can take a while.
	submitLockTTL = 2 * time.Minute
)

func saveDocumentSet(ctx context.Context, client *redis.Client, accountID string, set models.DocumentSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to marshal document set: %w", err)
	}
	if err := client.Set(ctx, DocumentSetPrefix+accountID, string(data), 0).Err(); err != nil {
		return fmt.Errorf("failed to save document set: %w", err)
	}
	return nil
}

func loadDocumentSet(ctx context.Context, client *redis.Client, accountID string) (models.DocumentSet, error) {
	data, err := client.Get(ctx, DocumentSetPrefix+accountID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.DocumentSet{}, nil
		}
		return nil, err
	}
	var set models.DocumentSet
	if err := json.Unmarshal([]byte(data), &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document set: %w", err)
	}
	return set, nil
}

func clearDocumentSet(ctx context.Context, client *redis.Client, accountID string) error {
	return client.Del(ctx, DocumentSetPrefix+accountID).Err()
}

// acquireSubmitLock marks a submission as in flight for the account. It
// returns false while a prior submission has not resolved.
func acquireSubmitLock(ctx context.Context, client *redis.Client, accountID string) (bool, error) {
	return client.SetNX(ctx, submitLockPrefix+accountID, "1", submitLockTTL).Result()
}

// releaseSubmitLock clears the in-flight marker once the submission resolves.
func releaseSubmitLock(ctx context.Context, client *redis.Client, accountID string) {
	_ = client.Del(ctx, submitLockPrefix+accountID).Err()
}

func saveChecklistStep(ctx context.Context, client *redis.Client, accountID string, group models.DocumentGroup) error {
	return client.Set(ctx, checklistStepPrefix+accountID, int(group), checklistStepTTL).Err()
}

func loadChecklistStep(ctx context.Context, client *redis.Client, accountID string) (models.DocumentGroup, error) {
	data, err := client.Get(ctx, checklistStepPrefix+accountID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.GroupPersonal, nil
		}
		return models.GroupPersonal, err
	}
	n, err := strconv.Atoi(data)
	if err != nil {
		return models.GroupPersonal, fmt.Errorf("corrupt checklist step: %w", err)
	}
	return models.DocumentGroup(n), nil
}
