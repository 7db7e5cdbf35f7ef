package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

func unreadCountKey(userID uint) string {
	return fmt.Sprintf("notif:unread:%d", userID)
}

// GetUnreadCount returns the cached unread-notification count for a user.
// The second return is false on cache miss or when Redis is not configured.
func GetUnreadCount(userID uint) (int64, bool) {
	if Client == nil {
		return 0, false
	}
	count, err := Client.Get(Ctx, unreadCountKey(userID)).Int64()
	if err != nil {
		return 0, false
	}
	return count, true
}

// SetUnreadCount caches the unread-notification count for a user.
func SetUnreadCount(userID uint, count int64) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, unreadCountKey(userID), count, 10*time.Minute)
}

// InvalidateUnreadCount drops the cached count after a fan-out or a
// read-flag change. Best-effort; a stale miss just falls back to the DB.
func InvalidateUnreadCount(userID uint) {
	if Client == nil {
		return
	}
	Client.Del(Ctx, unreadCountKey(userID))
}
