package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// INCR-then-PEXPIRE fixed window. The script keeps the check atomic so
// several API instances can share one counter per key.
const slidingCounterScript = `
local hits = redis.call("INCR", KEYS[1])
if hits == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if hits > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter enforces shared rate limits across instances. It fails open
// when Redis is unreachable.
type RedisLimiter struct {
	client  *redis.Client
	script  *redis.Script
	timeout time.Duration
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client:  client,
		script:  redis.NewScript(slidingCounterScript),
		timeout: 250 * time.Millisecond,
	}
}

func (l *RedisLimiter) Allow(key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{"ratelimit:" + key}, ttl, limit).Int64()
	if err != nil {
		return true
	}
	return allowed == 1
}
