package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyTTL  = 10 * time.Minute
	idempotencyLock = 30 * time.Second
)

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a repeated Idempotency-Key on
// POST requests. Clock terminals retry on flaky Wi-Fi; a retried clock-in must
// not turn into AlreadyActive.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s", c.FullPath(), idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached struct {
				Status int             `json:"status"`
				Body   json.RawMessage `json:"body"`
			}
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.Data(cached.Status, "application/json", cached.Body)
				c.Abort()
				return
			}
		}

		// SetNX so only one in-flight request per key does real work
		ok, err := rdb.SetNX(ctx, lockKey, "1", idempotencyLock).Result()
		if err == nil && !ok {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"message": "Request with this Idempotency-Key is already in progress",
			})
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec
		c.Next()

		if rec.Status() < http.StatusInternalServerError {
			payload, _ := json.Marshal(map[string]any{
				"status": rec.Status(),
				"body":   json.RawMessage(rec.body.Bytes()),
			})
			rdb.Set(ctx, cacheKey, payload, idempotencyTTL)
		}
		rdb.Del(ctx, lockKey)
	}
}
