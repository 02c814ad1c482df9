// Package cache provee un StatsCache respaldado por Redis para las
// agregaciones del dashboard. El cache es opcional: si Redis no está
// configurado o no responde, el servicio opera sin cache.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DavidManiIbrahim/keeper-api/pkg/config"
	"github.com/DavidManiIbrahim/keeper-api/pkg/logger"
)

// RedisCache implementa analytics.StatsCache con valores serializados como JSON.
type RedisCache struct {
	rdb *redis.Client
	log *logger.Logger
}

// Connect crea el cliente Redis y verifica la conexión con un ping, para que
// el caller pueda decidir (advertir y seguir sin cache, o abortar).
func Connect(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}
	return &RedisCache{rdb: rdb, log: log}, nil
}

// Get recupera un valor cacheado y lo deserializa en dest.
// Retorna true en hit; false en miss o error (el caller recalcula).
func (c *RedisCache) Get(ctx context.Context, key string, dest any) bool {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		c.log.Warn().Str("key", key).Err(err).Msg("valor cacheado corrupto, descartado")
		return false
	}
	return true
}

// Set guarda el valor bajo key con el TTL dado. Errores de Redis solo se
// registran: perder un Set no afecta la corrección, solo el cache.
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn().Str("key", key).Err(err).Msg("no se pudo serializar valor para cache")
		return
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		c.log.Warn().Str("key", key).Err(err).Msg("no se pudo escribir en redis")
	}
}

// Close cierra la conexión con Redis.
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}
