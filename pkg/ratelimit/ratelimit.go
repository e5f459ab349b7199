// Package ratelimit throttles HTTP clients by remote IP.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter *rate.Limiter
	last    time.Time
}

// PerIP keeps one token bucket per client address. Idle buckets are dropped by Sweep.
type PerIP struct {
	mu      sync.Mutex
	clients map[string]*entry
	rps     rate.Limit
	burst   int
	idle    time.Duration
	now     func() time.Time
}

func NewPerIP(rps float64, burst int) *PerIP {
	if burst <= 0 {
		burst = 1
	}
	return &PerIP{
		clients: make(map[string]*entry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idle:    30 * time.Minute,
		now:     time.Now,
	}
}

func (p *PerIP) Allow(ip string) bool {
	p.mu.Lock()
	e, ok := p.clients[ip]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(p.rps, p.burst)}
		p.clients[ip] = e
	}
	e.last = p.now()
	p.mu.Unlock()
	return e.limiter.Allow()
}

// Sweep removes buckets idle for longer than the idle window and returns how many went.
func (p *PerIP) Sweep() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	cutoff := p.now().Add(-p.idle)
	n := 0
	for ip, e := range p.clients {
		if e.last.Before(cutoff) {
			delete(p.clients, ip)
			n++
		}
	}
	return n
}

// Run sweeps every interval until stop is closed.
func (p *PerIP) Run(interval time.Duration, stop <-chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			p.Sweep()
		case <-stop:
			return
		}
	}
}

// Middleware answers 429 once a client exceeds its bucket.
func (p *PerIP) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !p.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP expects chi's RealIP middleware upstream to have rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
