package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
	expires     time.Time
}

type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheResponse returns a middleware that serves a short-lived cached copy
// of successful GET responses, keyed by path and query string. Intended
// for the global feed, where the same first page is requested far more
// often than it changes. Staleness up to ttl is acceptable there.
func CacheResponse(ttl time.Duration) gin.HandlerFunc {
	var mu sync.RWMutex
	cache := make(map[string]cachedResponse)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()

		mu.RLock()
		entry, ok := cache[key]
		mu.RUnlock()
		if ok && time.Now().Before(entry.expires) {
			c.Data(entry.status, entry.contentType, entry.body)
			c.Abort()
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = capture

		c.Next()

		if capture.Status() == http.StatusOK {
			mu.Lock()
			cache[key] = cachedResponse{
				status:      capture.Status(),
				contentType: capture.Header().Get("Content-Type"),
				body:        capture.buf.Bytes(),
				expires:     time.Now().Add(ttl),
			}
			mu.Unlock()
		}
	}
}
