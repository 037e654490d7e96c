package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const rateLimitPrefix = "event_registration_limiter"

// RateLimiter limits requests per client IP. rate uses the limiter format
// ("100-M", "10-S"). Counters live in Redis when a client is given so that
// every instance shares them, otherwise in process memory.
func RateLimiter(rate string, client *redis.Client) (gin.HandlerFunc, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}

	// 📦 Store
	var store limiter.Store
	if client != nil {
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix:   rateLimitPrefix,
			MaxRetry: 3,
		})
		if err != nil {
			return nil, err
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          rateLimitPrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
	}

	// 📊 Limiter instance
	instance := limiter.New(store, r)

	// 🚦 Gin-compatible middleware
	return ginlimiter.NewMiddleware(instance,
		ginlimiter.WithKeyGetter(GetIPFromContext),
		ginlimiter.WithLimitReachedHandler(func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests"})
		}),
		ginlimiter.WithErrorHandler(func(c *gin.Context, err error) {
			logrus.WithError(err).Error("rate limiter store failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}),
	), nil
}
