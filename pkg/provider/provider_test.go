package provider

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider is a scripted mock Provider: a sequence of canned
// responses consumed in order, with call capture for assertions.
type scriptedProvider struct {
	id      string
	mu      sync.Mutex
	script  []scriptEntry
	idx     int
	calls   int
}

type scriptEntry struct {
	result Result
	err    error
}

func newScriptedProvider(id string, entries ...scriptEntry) *scriptedProvider {
	return &scriptedProvider{id: id, script: entries}
}

func (p *scriptedProvider) ID() string { return p.id }

func (p *scriptedProvider) Generate(ctx context.Context, req Request) (Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.idx >= len(p.script) {
		return Result{Provider: p.id}, nil
	}
	e := p.script[p.idx]
	p.idx++
	if e.err != nil {
		return Result{}, e.err
	}
	e.result.Provider = p.id
	return e.result, nil
}

func (p *scriptedProvider) Stream(ctx context.Context, req Request) (<-chan Chunk, <-chan error) {
	chunks := make(chan Chunk, 1)
	errs := make(chan error, 1)
	chunks <- Chunk{Text: "", Done: true}
	close(chunks)
	close(errs)
	return chunks, errs
}

func TestFallbackChain_RetriesOnGeneric(t *testing.T) {
	first := newScriptedProvider("a", scriptEntry{err: &Error{Kind: ErrorGeneric, Message: "boom"}})
	second := newScriptedProvider("b", scriptEntry{result: Result{Text: "ok"}})

	chain := NewFallbackChain(first, second)
	res, err := chain.Generate(context.Background(), Request{Prompt: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "ok", res.Text)
	assert.Equal(t, "b", res.Provider)
}

func TestFallbackChain_FastFailsOnAuth(t *testing.T) {
	first := newScriptedProvider("a", scriptEntry{err: NewAuth(nil)})
	second := newScriptedProvider("b", scriptEntry{result: Result{Text: "never reached"}})

	chain := NewFallbackChain(first, second)
	_, err := chain.Generate(context.Background(), Request{Prompt: "hi"})

	require.Error(t, err)
	pe := Normalize(err)
	assert.Equal(t, ErrorAuth, pe.Kind)
	assert.Equal(t, 0, second.calls)
}

func TestPool_UnhealthyAboveErrorRateThreshold(t *testing.T) {
	healthy := newScriptedProvider("healthy")
	flaky := newScriptedProvider("flaky")

	pool := NewPool(StrategyRoundRobin, []Provider{healthy, flaky}, nil)

	for i := 0; i < 6; i++ {
		pool.Record("flaky", false, time.Millisecond)
	}
	pool.Record("healthy", true, time.Millisecond)

	for i := 0; i < 10; i++ {
		prov, ok := pool.Select()
		require.True(t, ok)
		assert.Equal(t, "healthy", prov.ID())
	}
}

func TestPool_NoHealthyMembers(t *testing.T) {
	a := newScriptedProvider("a")
	pool := NewPool(StrategyRoundRobin, []Provider{a}, nil)
	for i := 0; i < 6; i++ {
		pool.Record("a", false, time.Millisecond)
	}
	_, ok := pool.Select()
	assert.False(t, ok)
}

func TestTieredRouter_RoutesLongPromptToDeep(t *testing.T) {
	fast := newScriptedProvider("fast", scriptEntry{result: Result{Text: "fast"}})
	deep := newScriptedProvider("deep", scriptEntry{result: Result{Text: "deep"}})

	router := NewTieredRouter(map[Tier]Generator{
		TierFast: fast,
		TierDeep: deep,
	})

	longPrompt := ""
	for i := 0; i < 150; i++ {
		longPrompt += "word "
	}
	res, err := router.Generate(context.Background(), Request{Prompt: longPrompt})

	require.NoError(t, err)
	assert.Equal(t, "deep", res.Text)
}

func TestTieredRouter_ExplicitHintWins(t *testing.T) {
	fast := newScriptedProvider("fast", scriptEntry{result: Result{Text: "fast"}})
	deep := newScriptedProvider("deep", scriptEntry{result: Result{Text: "deep"}})

	router := NewTieredRouter(map[Tier]Generator{
		TierFast: fast,
		TierDeep: deep,
	})

	res, err := router.Generate(context.Background(), Request{Prompt: "hi", Tier: "deep"})

	require.NoError(t, err)
	assert.Equal(t, "deep", res.Text)
}
