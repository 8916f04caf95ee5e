package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Paul-Briman/lumina-photography/internal/config"
	"github.com/Paul-Briman/lumina-photography/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// double check under the lock
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			c := value.(*client)
			if time.Since(c.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// AuthRateLimit throttles credential endpoints per client IP. With Redis
// connected the window is shared across instances; otherwise an in-process
// token bucket applies.
func AuthRateLimit() gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := config.Get().RateLimit
		if !cfg.Enabled {
			c.Next()
			return
		}

		ip := c.ClientIP()

		if redisClient := service.GetRedisClient(); redisClient != nil {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			key := service.RedisKey("ratelimit", "auth", ip)
			count, err := redisClient.Incr(ctx, key).Result()
			if err == nil {
				if count == 1 {
					_ = redisClient.Expire(ctx, key, time.Second).Err()
				}
				if float64(count) > cfg.AuthRPS+float64(cfg.AuthBurst) {
					c.JSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, slow down"})
					c.Abort()
					return
				}
				c.Next()
				return
			}
			// Redis hiccup: fall through to the local bucket.
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(cfg.AuthRPS), cfg.AuthBurst)
		})

		if !limiter.getLimiter(ip).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, slow down"})
			c.Abort()
			return
		}
		c.Next()
	}
}
