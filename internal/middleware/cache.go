package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-dashboard-api/pkg/middleware/requestid"
)

const (
	responseMetaKey  = "response_meta"
	requestStartKey  = "request_start"
	cacheHitKey      = "cache_hit"
	processingTimeMs = "processing_time_ms"
	// CacheHeader reports HIT or MISS for cached list responses.
	CacheHeader = "X-Cache"
)

// WithResponseMeta prepares the per-request meta map rendered into response envelopes.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		meta := map[string]interface{}{}
		if reqID := requestid.Value(c); reqID != "" {
			meta["request_id"] = reqID
		}
		c.Set(requestStartKey, time.Now())
		c.Set(responseMetaKey, meta)
		c.Next()
	}
}

// FinalizeMeta stamps the elapsed handler time and returns the meta map ready
// to be rendered. It never returns nil.
func FinalizeMeta(c *gin.Context) map[string]interface{} {
	meta := ensureMeta(c)
	if c == nil {
		return meta
	}
	if v, exists := c.Get(requestStartKey); exists {
		if start, ok := v.(time.Time); ok {
			meta[processingTimeMs] = time.Since(start).Milliseconds()
		}
	}
	return meta
}

// SetCacheHit records whether the list page came from cache.
func SetCacheHit(c *gin.Context, hit bool) {
	ensureMeta(c)[cacheHitKey] = hit
	if c != nil {
		if hit {
			c.Header(CacheHeader, "HIT")
		} else {
			c.Header(CacheHeader, "MISS")
		}
	}
}

// ExtractMeta returns the metadata map stored on the context.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	if meta, exists := c.Get(responseMetaKey); exists {
		if typed, ok := meta.(map[string]interface{}); ok {
			return typed
		}
	}
	return nil
}

func ensureMeta(c *gin.Context) map[string]interface{} {
	if meta := ExtractMeta(c); meta != nil {
		return meta
	}
	meta := make(map[string]interface{})
	if c != nil {
		c.Set(responseMetaKey, meta)
	}
	return meta
}
