package services

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	config "github.com/pachatour/pacha_tour/configs"
	"github.com/redis/go-redis/v9"
)

// Cache is nil when Redis is unreachable; every helper degrades to a no-op
// so catalog endpoints keep working without it.
var Cache *redis.Client

const catalogCacheTTL = 5 * time.Minute

func InitCache() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	dbNum := 0
	if raw := config.Config("REDIS_DB"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			dbNum = n
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis unavailable, catalog caching disabled: %v", err)
		Cache = nil
		return
	}
	Cache = client
	log.Println("✅ Redis cache connected")
}

func CacheGetJSON(ctx context.Context, key string, dest interface{}) bool {
	if Cache == nil {
		return false
	}
	raw, err := Cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func CacheSetJSON(ctx context.Context, key string, value interface{}) {
	if Cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = Cache.SetEx(ctx, key, raw, catalogCacheTTL).Err()
}

// CacheInvalidate drops every key under the given prefix. Called from the
// admin write paths so catalog reads never serve stale listings for long.
func CacheInvalidate(ctx context.Context, prefix string) {
	if Cache == nil {
		return
	}
	iter := Cache.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		_ = Cache.Del(ctx, iter.Val()).Err()
	}
}
