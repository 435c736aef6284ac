package middleware

import (
	"sync"
	"time"

	"advocates/internal/domain/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterStore keeps one token bucket per client IP.
type limiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (s *limiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.limiters[ip]
	if !ok {
		l = rate.NewLimiter(s.limit, s.burst)
		s.limiters[ip] = l
	}
	return l
}

// RateLimit rejects clients exceeding requestsPerMinute with the
// RateLimit taxonomy error.
func RateLimit(requestsPerMinute int, log *zap.Logger) gin.HandlerFunc {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 120
	}
	store := &limiterStore{
		limiters: map[string]*rate.Limiter{},
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    requestsPerMinute / 4,
	}
	if store.burst < 1 {
		store.burst = 1
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.get(ip).Allow() {
			log.Warn("rate limit exceeded",
				zap.String("ip", ip),
				zap.String("request_id", GetRequestID(c)),
			)
			e := apperr.NewRateLimit()
			resp := apperr.ToResponse(e, c.Request.URL.Path)
			c.AbortWithStatusJSON(e.StatusCode(), gin.H{
				"data":    []any{},
				"error":   resp.Error,
				"message": resp.Message,
				"code":    resp.Code,
			})
			return
		}
		c.Next()
	}
}
