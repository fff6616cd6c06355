package provider

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// unhealthyCooldown: a provider is unhealthy if its last error came
// after its last success and less than this long ago.
const unhealthyCooldown = 30 * time.Second

// minSampleSize is the smallest request count a health ratio is computed
// over; below it a provider is assumed healthy (not enough signal yet).
const minSampleSize = 5

// Strategy selects among healthy pool members.
type Strategy string

const (
	StrategyRoundRobin  Strategy = "round_robin"
	StrategyLeastLoaded Strategy = "least_loaded"
	StrategyWeighted    Strategy = "weighted"
	StrategyLatencyEMA  Strategy = "latency_ema"
)

// member pairs a Provider with its tracked stats and pool weight.
type member struct {
	provider Provider
	weight   int

	mu          sync.Mutex
	requests    int
	errors      int
	inFlight    int
	lastError   time.Time
	lastSuccess time.Time
	latencyEMA  time.Duration
}

// healthy reports whether a member passes the health gate. It fails on
// error_rate > 0.5 over >= 5 requests, or on a last error within the
// cooldown window after last success.
func (m *member) healthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.requests >= minSampleSize {
		if float64(m.errors)/float64(m.requests) > 0.5 {
			return false
		}
	}
	if !m.lastError.IsZero() && m.lastError.After(m.lastSuccess) &&
		time.Since(m.lastError) < unhealthyCooldown {
		return false
	}
	return true
}

func (m *member) record(ok bool, latency time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests++
	if ok {
		m.lastSuccess = time.Now()
		if m.latencyEMA == 0 {
			m.latencyEMA = latency
		} else {
			m.latencyEMA = (m.latencyEMA*4 + latency) / 5
		}
	} else {
		m.errors++
		m.lastError = time.Now()
	}
}

// Pool selects a healthy provider by Strategy and tracks per-provider
// health the way mcp.HealthMonitor tracks per-server health, adapted from
// a background-probe model to a request-outcome model.
type Pool struct {
	mu       sync.RWMutex
	members  []*member
	strategy Strategy
	rrIndex  int
	logger   *slog.Logger
}

// NewPool constructs a pool. weights is optional and only consulted by
// StrategyWeighted; a missing or zero weight defaults to 1.
func NewPool(strategy Strategy, providers []Provider, weights map[string]int) *Pool {
	members := make([]*member, len(providers))
	for i, p := range providers {
		w := weights[p.ID()]
		if w <= 0 {
			w = 1
		}
		members[i] = &member{provider: p, weight: w}
	}
	return &Pool{members: members, strategy: strategy, logger: slog.Default()}
}

// Select picks the next healthy provider under the pool's strategy.
// Returns false if every member is unhealthy.
func (p *Pool) Select() (Provider, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	healthy := make([]*member, 0, len(p.members))
	for _, m := range p.members {
		if m.healthy() {
			healthy = append(healthy, m)
		}
	}
	if len(healthy) == 0 {
		p.logger.Warn("provider pool: no healthy members", "total", len(p.members))
		return nil, false
	}

	switch p.strategy {
	case StrategyLeastLoaded:
		return p.pickLeastLoaded(healthy), true
	case StrategyWeighted:
		return p.pickWeighted(healthy), true
	case StrategyLatencyEMA:
		return p.pickLowestLatency(healthy), true
	default:
		return p.pickRoundRobin(healthy), true
	}
}

func (p *Pool) pickRoundRobin(healthy []*member) Provider {
	m := healthy[p.rrIndex%len(healthy)]
	p.rrIndex++
	return m.provider
}

func (p *Pool) pickLeastLoaded(healthy []*member) Provider {
	best := healthy[0]
	for _, m := range healthy[1:] {
		m.mu.Lock()
		bestLoad := best.inFlight
		load := m.inFlight
		m.mu.Unlock()
		if load < bestLoad {
			best = m
		}
	}
	return best.provider
}

func (p *Pool) pickWeighted(healthy []*member) Provider {
	total := 0
	for _, m := range healthy {
		total += m.weight
	}
	target := p.rrIndex % total
	p.rrIndex++
	for _, m := range healthy {
		if target < m.weight {
			return m.provider
		}
		target -= m.weight
	}
	return healthy[0].provider
}

func (p *Pool) pickLowestLatency(healthy []*member) Provider {
	best := healthy[0]
	for _, m := range healthy[1:] {
		m.mu.Lock()
		bestLatency, load := best.latencyEMA, m.latencyEMA
		m.mu.Unlock()
		if bestLatency == 0 || (load != 0 && load < bestLatency) {
			best = m
		}
	}
	return best.provider
}

// Record feeds back the outcome of a call so future Select calls reflect
// current provider health.
func (p *Pool) Record(providerID string, ok bool, latency time.Duration) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, m := range p.members {
		if m.provider.ID() == providerID {
			m.record(ok, latency)
			return
		}
	}
}

// Generate selects a healthy member and runs it, recording the outcome.
func (p *Pool) Generate(ctx context.Context, req Request) (Result, error) {
	prov, ok := p.Select()
	if !ok {
		return Result{}, &Error{Kind: ErrorGeneric, Message: "no healthy provider available"}
	}
	start := time.Now()
	res, err := prov.Generate(ctx, req)
	p.Record(prov.ID(), err == nil, time.Since(start))
	return res, err
}

// Stream selects a healthy member and streams from it, recording the
// outcome against the member's health stats once the stream ends.
func (p *Pool) Stream(ctx context.Context, req Request) (<-chan Chunk, <-chan error) {
	prov, ok := p.Select()
	if !ok {
		errs := make(chan error, 1)
		errs <- &Error{Kind: ErrorGeneric, Message: "no healthy provider available"}
		close(errs)
		chunks := make(chan Chunk)
		close(chunks)
		return chunks, errs
	}

	start := time.Now()
	src, srcErr := prov.Stream(ctx, req)
	chunks := make(chan Chunk)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)
		err, _ := relayStream(ctx, src, srcErr, chunks)
		p.Record(prov.ID(), err == nil, time.Since(start))
		if err != nil {
			errs <- err
		}
	}()

	return chunks, errs
}
