package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/asa131211/sanchez-park/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ipWindow tracks request counts per IP inside a sliding window.
type ipWindow struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

// limiter is a sliding-window rate limiter keyed by client IP.
type limiter struct {
	entries map[string]*ipWindow
	mu      sync.Mutex
	limit   int
	window  time.Duration
	message string
}

func newLimiter(limit int, window time.Duration, message string) *limiter {
	return &limiter{
		entries: make(map[string]*ipWindow),
		limit:   limit,
		window:  window,
		message: message,
	}
}

func (l *limiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		entry, exists := l.entries[ip]
		if !exists {
			entry = &ipWindow{}
			l.entries[ip] = entry
		}
		l.mu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(l.window)
		}

		entry.count++
		if entry.count > l.limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

func (l *limiter) purge(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	purged := 0
	for ip, entry := range l.entries {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(l.entries, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}

var (
	loginLimiter = newLimiter(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.")
	apiLimiter   = newLimiter(200, time.Minute, "Demasiadas solicitudes. Intente nuevamente en un momento.")
)

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return loginLimiter.middleware()
}

// RateLimiter limits general API traffic to 200 requests per minute per IP.
func RateLimiter() gin.HandlerFunc {
	return apiLimiter.middleware()
}

const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

// purgeExpiredEntries keeps the limiter maps from growing without bound
// as one-off IPs accumulate.
func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purgedLogin := loginLimiter.purge(now)
		purgedAPI := apiLimiter.purge(now)
		if purgedLogin > 0 || purgedAPI > 0 {
			log.Debug().
				Int("login_entries_purged", purgedLogin).
				Int("api_entries_purged", purgedAPI).
				Msg("rate limiter maps purged")
		}
	}
}
