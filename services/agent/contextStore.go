// File: services/agent/contextStore.go
package agent

import (
	"context"
	"encoding/json"
	"time"

	"roomi/models"

	"github.com/go-redis/redis/v8"
)

const agentContextPrefix = "agent:ctx:"

// RedisContextStore persists per-session conversation context with a TTL.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) (*models.AgentContext, error) {
	key := agentContextPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.AgentContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var agentCtx models.AgentContext
	if err := json.Unmarshal([]byte(data), &agentCtx); err != nil {
		return nil, err
	}
	return &agentCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, agentCtx *models.AgentContext) error {
	key := agentContextPrefix + sessionID
	b, err := json.Marshal(agentCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	key := agentContextPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
