package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/studiobela/salon-booking/internal/config"
	"github.com/studiobela/salon-booking/internal/models"
)

// NewRedisClient abre o cliente de cache. Falha de conexão não derruba o
// servidor: a API continua funcionando direto no banco, só sem cache.
func NewRedisClient(cfg *config.Config, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisCacheDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Warn("redis unavailable, day-listing cache disabled",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
		return nil
	}

	return client
}

// DayCache guarda a listagem de horários de um dia por alguns segundos.
// Toda mutação (reserva, update, delete, seed) invalida o dia afetado, então
// o cache nunca participa da decisão de reserva em si.
type DayCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewDayCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *DayCache {
	return &DayCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *DayCache) key(date string) string {
	return "slots:" + date
}

func (c *DayCache) Get(ctx context.Context, date string) ([]models.Slot, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, c.key(date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []models.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *DayCache) Set(ctx context.Context, date string, slots []models.Slot) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, c.key(date), raw, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn("failed to cache day listing",
			zap.String("date", date),
			zap.Error(err),
		)
	}
}

func (c *DayCache) Invalidate(ctx context.Context, dates ...string) {
	if c == nil || c.client == nil || len(dates) == 0 {
		return
	}

	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = c.key(d)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil && c.logger != nil {
		c.logger.Warn("failed to invalidate day cache", zap.Error(err))
	}
}
