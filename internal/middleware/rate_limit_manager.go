package middleware

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitManager manages per-client rate limiters with lifecycle control
type RateLimitManager struct {
	visitors         map[string]*visitor
	visitorsMu       sync.RWMutex
	renderLimiters   map[string]*visitor
	renderLimitersMu sync.RWMutex
	ctx              context.Context
	cancel           context.CancelFunc
	wg               sync.WaitGroup
}

// NewRateLimitManager creates a new rate limit manager with context-based lifecycle
func NewRateLimitManager(ctx context.Context) *RateLimitManager {
	managerCtx, cancel := context.WithCancel(ctx)

	m := &RateLimitManager{
		visitors:       make(map[string]*visitor),
		renderLimiters: make(map[string]*visitor),
		ctx:            managerCtx,
		cancel:         cancel,
	}

	m.wg.Add(1)
	go m.cleanupLoop()

	return m
}

// GetVisitor retrieves or creates the general limiter for the given IP
func (m *RateLimitManager) GetVisitor(ip string, requestsPerWindow int, windowSeconds int, burst int) *rate.Limiter {
	if requestsPerWindow <= 0 {
		return nil
	}
	if burst < requestsPerWindow {
		burst = requestsPerWindow
	}

	m.visitorsMu.Lock()
	defer m.visitorsMu.Unlock()
	return lookupLimiter(m.visitors, ip, requestsPerWindow, windowSeconds, burst)
}

// GetRenderLimiter retrieves or creates the limiter for on-demand renders.
// Renders are CPU bound, so they get a bucket of their own with no extra burst.
func (m *RateLimitManager) GetRenderLimiter(ip string, requestsPerWindow int, windowSeconds int) *rate.Limiter {
	if requestsPerWindow <= 0 {
		return nil
	}

	m.renderLimitersMu.Lock()
	defer m.renderLimitersMu.Unlock()
	return lookupLimiter(m.renderLimiters, ip, requestsPerWindow, windowSeconds, requestsPerWindow)
}

func lookupLimiter(limiters map[string]*visitor, ip string, requestsPerWindow, windowSeconds, burst int) *rate.Limiter {
	v, exists := limiters[ip]
	if exists {
		v.lastSeen = time.Now()
		return v.limiter
	}

	if windowSeconds <= 0 {
		windowSeconds = 60
	}

	limitPerSecond := float64(requestsPerWindow) / float64(windowSeconds)
	limit := rate.Limit(limitPerSecond)
	if limitPerSecond <= 0 {
		limit = rate.Inf
	}

	limiter := rate.NewLimiter(limit, burst)
	limiters[ip] = &visitor{limiter, time.Now()}
	return limiter
}

// cleanupLoop periodically removes inactive rate limiters
func (m *RateLimitManager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.cleanup(time.Now())
		}
	}
}

// cleanup removes limiters that have not been used recently
func (m *RateLimitManager) cleanup(now time.Time) {
	m.visitorsMu.Lock()
	for ip, v := range m.visitors {
		if now.Sub(v.lastSeen) > 3*time.Minute {
			delete(m.visitors, ip)
		}
	}
	m.visitorsMu.Unlock()

	m.renderLimitersMu.Lock()
	for ip, v := range m.renderLimiters {
		if now.Sub(v.lastSeen) > 10*time.Minute {
			delete(m.renderLimiters, ip)
		}
	}
	m.renderLimitersMu.Unlock()
}

func (m *RateLimitManager) visitorCount() int {
	m.visitorsMu.RLock()
	defer m.visitorsMu.RUnlock()
	return len(m.visitors)
}

// Shutdown stops the cleanup goroutine and waits for it to finish
func (m *RateLimitManager) Shutdown() error {
	m.cancel()
	m.wg.Wait()
	return nil
}
