package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/contextutil"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"

	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

type idempotentResult struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func IdempotencyCacheKey(path string, userID uint, key string) string {
	return fmt.Sprintf("idemp:%s:%d:%s", path, userID, key)
}

// Idempotency replays the stored response of a POST that already succeeded
// with the same Idempotency-Key, and rejects a duplicate while the first is
// still running. Requests without the header are not tracked. Must run after
// AuthMiddleware so keys are scoped per user.
func Idempotency(rdb redis.Cmdable) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(HeaderIdempotencyKey)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := contextutil.GetLogger(ctx, zap.L()).Named("middleware.idempotency")
		cacheKey := IdempotencyCacheKey(c.FullPath(), c.GetUint(ContextUserID), idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			var cached idempotentResult
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				c.Header(HeaderReplayed, "true")
				c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
				c.Abort()
				return
			}
			log.Warn("discarding unreadable idempotent result", zap.String("key", cacheKey))
		case !errors.Is(err, redis.Nil):
			log.Warn("idempotency lookup failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Abort(c, http.StatusConflict, "PROCESSING", "A request with this Idempotency-Key is still being processed")
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder

		c.Next()

		status := recorder.Status()
		if status >= 200 && status < 300 && recorder.body.Len() > 0 {
			payload, err := json.Marshal(idempotentResult{Status: status, Body: recorder.body.Bytes()})
			if err == nil {
				err = rdb.Set(ctx, cacheKey, payload, idempotencyResultTTL).Err()
			}
			if err != nil {
				log.Warn("store idempotent result failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}

		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			log.Warn("release idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
		}
	}
}
