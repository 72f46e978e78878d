package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dzair-travel/skyflow/config"
	"github.com/dzair-travel/skyflow/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps recent search results warm for repeated identical
// queries. It is display-side only: booking always reprices against the
// supplier, so a cached offer's price is never trusted for the final charge.
type RedisCache struct {
	client    *redis.Client
	offersTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, offersTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		offersTTL: offersTTL,
	}
}

func (c *RedisCache) GetOffers(ctx context.Context, key string) ([]domain.FlightOffer, error) {
	data, err := c.client.Get(ctx, offersKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var offers []domain.FlightOffer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (c *RedisCache) SetOffers(ctx context.Context, key string, offers []domain.FlightOffer) error {
	payload, err := json.Marshal(offers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, offersKey(key), payload, c.offersTTL).Err()
}

func offersKey(key string) string {
	return fmt.Sprintf("cache:offers:%s", key)
}
