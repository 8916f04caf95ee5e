package service

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Paul-Briman/lumina-photography/internal/config"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisMu     sync.RWMutex
)

// InitRedis connects the optional Redis client. Without Redis the server
// falls back to in-process rate limiting, so a failed connection only warns.
func InitRedis() {
	cfg := config.Get()
	if !cfg.Redis.Enabled {
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[redis] connection failed, falling back to in-process limits: %v", err)
		_ = client.Close()
		return
	}

	redisMu.Lock()
	redisClient = client
	redisMu.Unlock()
	log.Println("[redis] connected")
}

func GetRedisClient() *redis.Client {
	redisMu.RLock()
	defer redisMu.RUnlock()
	return redisClient
}

// RedisKey builds a namespaced key under the configured prefix.
func RedisKey(parts ...string) string {
	prefix := config.Get().Redis.Prefix
	if prefix == "" {
		prefix = "lumina"
	}
	return prefix + ":" + strings.Join(parts, ":")
}
