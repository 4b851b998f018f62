package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ecoshop/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService wraps Redis with JSON encoding and the key scheme used by
// the snapshot and user caches.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// Get fetches a key into dest, reporting whether it was present.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) Close() error {
	return s.client.Close()
}

// Key generation

func SnapshotKey(userID uint) string {
	return fmt.Sprintf("ledger:snapshot:%d", userID)
}

func UserKey(userID uint) string {
	return fmt.Sprintf("user:id:%d", userID)
}

// Snapshot caching

func (s *CacheService) GetSnapshot(ctx context.Context, userID uint) (*models.WalletSnapshot, error) {
	var snap models.WalletSnapshot
	found, err := s.Get(ctx, SnapshotKey(userID), &snap)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("snapshot not in cache")
	}
	return &snap, nil
}

func (s *CacheService) SetSnapshot(ctx context.Context, userID uint, snap *models.WalletSnapshot) error {
	if snap == nil {
		return errors.New("cannot cache nil snapshot")
	}
	return s.Set(ctx, SnapshotKey(userID), snap)
}

func (s *CacheService) InvalidateSnapshot(ctx context.Context, userID uint) error {
	return s.Delete(ctx, SnapshotKey(userID))
}

// User caching

func (s *CacheService) CacheUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("cannot cache nil user")
	}
	return s.Set(ctx, UserKey(user.ID), user)
}

func (s *CacheService) GetUser(ctx context.Context, key string) (*models.User, error) {
	var user models.User
	found, err := s.Get(ctx, key, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("user not found in cache")
	}
	return &user, nil
}

func (s *CacheService) InvalidateUser(ctx context.Context, userID uint) error {
	return s.Delete(ctx, UserKey(userID))
}
