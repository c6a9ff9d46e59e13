package redis

import (
	"context"
	"fmt"
	"time"

	"codexrfa-service/internal/app/contracts"
	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type sessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) contracts.SessionStore {
	return &sessionStore{client: client}
}

func (s *sessionStore) SaveSession(ctx context.Context, session *models.TraversalSession, ttl time.Duration) error {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, session.ID)
	jsonValue, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := s.client.Set(ctx, key, jsonValue, ttl).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (s *sessionStore) GetSession(ctx context.Context, sessionID string) (*models.TraversalSession, error) {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, exceptions.ErrSessionNotFound(err)
	} else if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}

	var session models.TraversalSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, exceptions.ErrCannotUnmarshalJSON(err)
	}
	return &session, nil
}

func (s *sessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (s *sessionStore) SaveSnapshot(ctx context.Context, snapshot *models.FormSnapshot, ttl time.Duration) error {
	key := fmt.Sprintf(constvars.RedisKeySnapshotFormat, snapshot.Form.ID, snapshot.Form.Version)
	jsonValue, err := json.Marshal(snapshot)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := s.client.Set(ctx, key, jsonValue, ttl).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (s *sessionStore) GetSnapshot(ctx context.Context, formID string, version int64) (*models.FormSnapshot, error) {
	key := fmt.Sprintf(constvars.RedisKeySnapshotFormat, formID, version)
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}

	var snapshot models.FormSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, exceptions.ErrCannotUnmarshalJSON(err)
	}
	return &snapshot, nil
}
