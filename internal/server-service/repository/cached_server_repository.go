package repository

import (
	"RBR_Server_Side/internal/server-service/model"
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// cachedServerRepository is a read-through cache in front of the server
// repository. Only single-record reads are cached; list reads always hit the
// database.
type cachedServerRepository struct {
	redis    *redis.Client
	repo     ServerRepository
	cacheTTL time.Duration
}

func (*cachedServerRepository) serverCacheKey(id int) string {
	return fmt.Sprintf("server:%d", id)
}

func (c *cachedServerRepository) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	return c.repo.CreateServer(ctx, server)
}

func (c *cachedServerRepository) GetServerById(ctx context.Context, serverId int) (model.Server, error) {
	key := c.serverCacheKey(serverId)
	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var server model.Server
		if e := gob.NewDecoder(bytes.NewReader(data)).Decode(&server); e == nil {
			return server, nil
		}
		// undecodable entry, drop it and fall through to the database
		c.redis.Del(ctx, key)
	} else if err != redis.Nil {
		return model.Server{}, fmt.Errorf("cachedServerRepository.GetServerById: %w", err)
	}
	server, err := c.repo.GetServerById(ctx, serverId)
	if err != nil {
		return model.Server{}, err
	}
	var buf bytes.Buffer
	if e := gob.NewEncoder(&buf).Encode(server); e == nil {
		c.redis.Set(ctx, key, buf.Bytes(), c.cacheTTL)
	}
	return server, nil
}

func (c *cachedServerRepository) GetServers(ctx context.Context, name string, isActive *bool, sortBy string, sortOrder string, limit int, offset int) ([]model.Server, error) {
	return c.repo.GetServers(ctx, name, isActive, sortBy, sortOrder, limit, offset)
}

func (c *cachedServerRepository) UpdateServer(ctx context.Context, serverId int, updates model.ServerUpdate) (model.Server, error) {
	if err := c.redis.Del(ctx, c.serverCacheKey(serverId)).Err(); err != nil {
		return model.Server{}, fmt.Errorf("cachedServerRepository.UpdateServer: %w", err)
	}
	return c.repo.UpdateServer(ctx, serverId, updates)
}

func (c *cachedServerRepository) DeleteServerById(ctx context.Context, serverId int) error {
	if err := c.redis.Del(ctx, c.serverCacheKey(serverId)).Err(); err != nil {
		return fmt.Errorf("cachedServerRepository.DeleteServerById: %w", err)
	}
	return c.repo.DeleteServerById(ctx, serverId)
}

func (c *cachedServerRepository) GetServersStatus(ctx context.Context) ([]model.ServerStatus, error) {
	return c.repo.GetServersStatus(ctx)
}

func (c *cachedServerRepository) CountServersByActivity(ctx context.Context) (ServersActivitySummary, error) {
	return c.repo.CountServersByActivity(ctx)
}

func NewCachedServerRepository(redis *redis.Client, repo ServerRepository, cacheTTL time.Duration) ServerRepository {
	return &cachedServerRepository{
		redis:    redis,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
