package middleware

import (
	"net/http"
	"sync"
	"time"

	"einsatzplan/internal/apierror"

	"github.com/gin-gonic/gin"
)

const limiterPurgeInterval = 5 * time.Minute

// ipLimiter is a fixed-window per-IP counter. Precise sliding windows are
// not worth the bookkeeping here: the login limiter guards against password
// guessing, the API limiter against runaway clients, and both tolerate the
// window-edge burst a fixed window allows.
type ipLimiter struct {
	limit   int
	window  time.Duration
	message string

	mu        sync.Mutex
	windows   map[string]*ipWindow
	nextPurge time.Time
}

type ipWindow struct {
	count int
	until time.Time
}

func newIPLimiter(limit int, window time.Duration, message string) *ipLimiter {
	return &ipLimiter{
		limit:   limit,
		window:  window,
		message: message,
		windows: make(map[string]*ipWindow),
	}
}

func (l *ipLimiter) allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.maybePurge(now)

	w := l.windows[ip]
	if w == nil || now.After(w.until) {
		w = &ipWindow{until: now.Add(l.window)}
		l.windows[ip] = w
	}
	w.count++
	return w.count <= l.limit, w.until
}

// maybePurge drops expired windows so IPs that never return do not pile up.
// Running inside allow's lock keeps the limiter free of background
// goroutines; the sweep is cheap at the map sizes a per-IP limiter sees.
func (l *ipLimiter) maybePurge(now time.Time) {
	if now.Before(l.nextPurge) {
		return
	}
	for ip, w := range l.windows {
		if now.After(w.until) {
			delete(l.windows, ip)
		}
	}
	l.nextPurge = now.Add(limiterPurgeInterval)
}

func (l *ipLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, until := l.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", until.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter throttles credential attempts: 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newIPLimiter(20, time.Minute,
		"Zu viele Login-Versuche. Bitte in 1 Minute erneut versuchen.").handler()
}

// RateLimiter throttles the whole API per IP with the given budget.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newIPLimiter(limit, window,
		"Zu viele Anfragen. Bitte gleich erneut versuchen.").handler()
}
