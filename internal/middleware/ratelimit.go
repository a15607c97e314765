package middleware

import (
	"net/http"
	"sync"

	"github.com/AFSHAL-7/trustlens/config"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// userLimiters 按用户维护限流器
// 限流器只增不减，用户量级有限，暂不做回收
type userLimiters struct {
	mutex    sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (u *userLimiters) get(userID string) *rate.Limiter {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	limiter, ok := u.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(u.limit, u.burst)
		u.limiters[userID] = limiter
	}
	return limiter
}

// RateLimit 按用户限流，必须挂在 Auth 之后
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	limiters := &userLimiters{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(cfg.RequestsPerMinute) / 60.0),
		burst:    cfg.Burst,
	}
	if cfg.RequestsPerMinute <= 0 {
		// 未配置时不限流
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if !limiters.get(UserID(c)).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, slow down"})
			return
		}
		c.Next()
	}
}
