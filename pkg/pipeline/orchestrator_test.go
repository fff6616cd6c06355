package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiom-guard/boundary/pkg/axiom"
	"github.com/axiom-guard/boundary/pkg/expression"
	"github.com/axiom-guard/boundary/pkg/models"
	"github.com/axiom-guard/boundary/pkg/provider"
	"github.com/axiom-guard/boundary/pkg/safety"
	"github.com/axiom-guard/boundary/pkg/semantic"
)

// fakeSealer records every AuditRecord sealed against it, chaining
// prev_hash off the immediately prior call — enough for the orchestrator
// tests without a database.
type fakeSealer struct {
	sealed []models.AuditRecord
}

func (f *fakeSealer) SealAudit(_ context.Context, _ string, record models.AuditRecord) (models.AuditRecord, error) {
	if len(f.sealed) > 0 {
		record.PrevHash = f.sealed[len(f.sealed)-1].RecordHash
	}
	record.RecordHash = "hash-" + time.Now().Format(time.RFC3339Nano)
	f.sealed = append(f.sealed, record)
	return record, nil
}

// fakeGenerator returns a scripted response, or errs if Err is set.
type fakeGenerator struct {
	text  string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(_ context.Context, _ provider.Request) (provider.Result, error) {
	f.calls++
	if f.err != nil {
		return provider.Result{}, f.err
	}
	return provider.Result{Text: f.text}, nil
}

func newTestOrchestrator(t *testing.T, gen provider.Generator, sealer AuditSealer) *Orchestrator {
	t.Helper()
	registry, err := axiom.NewRegistry()
	require.NoError(t, err)
	scanner := safety.NewScanner(safety.DefaultResources())
	return NewOrchestrator(registry, scanner, semantic.NewAnalyzer(), expression.NewShaper(), gen, sealer, "v1")
}

func TestOrchestrator_CompletesAndSealsAudit(t *testing.T) {
	sealer := &fakeSealer{}
	orch := newTestOrchestrator(t, &fakeGenerator{text: "That sounds like real progress."}, sealer)

	req := models.Request{
		UserID:         "user-1",
		InputText:      "I finished my 5k training plan today.",
		InvocationMode: models.ModePostAction,
		TriggerSource:  models.TriggerUserCompletedWriting,
		Timestamp:      time.Now().UTC(),
	}

	resp, err := orch.Run(context.Background(), req, expression.DefaultPreferences())
	require.NoError(t, err)
	assert.True(t, resp.Safe)
	assert.NotEmpty(t, resp.OutputText)
	assert.NotEmpty(t, resp.AuditID)
	require.Len(t, sealer.sealed, 1)
	assert.Contains(t, sealer.sealed[0].LayersExecuted, "express")
}

func TestOrchestrator_CrisisShortCircuitsBeforeGeneration(t *testing.T) {
	sealer := &fakeSealer{}
	gen := &fakeGenerator{text: "should never be used"}
	orch := newTestOrchestrator(t, gen, sealer)

	req := models.Request{
		UserID:         "user-2",
		InputText:      "I want to kill myself tonight.",
		InvocationMode: models.ModeExplicitGuidance,
		Timestamp:      time.Now().UTC(),
	}

	resp, err := orch.Run(context.Background(), req, expression.DefaultPreferences())
	require.NoError(t, err)
	assert.True(t, resp.Safe)
	require.Len(t, sealer.sealed, 1)
	assert.Equal(t, []string{"safety", "audit"}, sealer.sealed[0].LayersExecuted)
}

func TestOrchestrator_GenerationFailureDegradesGracefully(t *testing.T) {
	sealer := &fakeSealer{}
	gen := &fakeGenerator{err: &provider.Error{Kind: provider.ErrorGeneric, Message: "boom"}}
	orch := newTestOrchestrator(t, gen, sealer)

	req := models.Request{
		UserID:         "user-3",
		InputText:      "I reviewed my notes from therapy today.",
		InvocationMode: models.ModePostAction,
		TriggerSource:  models.TriggerUserReviewed,
		Timestamp:      time.Now().UTC(),
	}

	resp, err := orch.Run(context.Background(), req, expression.DefaultPreferences())
	require.NoError(t, err)
	assert.True(t, resp.Safe)
	assert.NotEmpty(t, resp.OutputText)
	require.Len(t, sealer.sealed, 1)
	assert.Equal(t, []string{"safety", "axiom_in", "semantic", "generate", "audit"}, sealer.sealed[0].LayersExecuted)
}

func TestOrchestrator_ChainsAuditRecordsPerUser(t *testing.T) {
	sealer := &fakeSealer{}
	orch := newTestOrchestrator(t, &fakeGenerator{text: "Noted."}, sealer)

	req := models.Request{
		UserID:         "user-4",
		InputText:      "Just logging a quick reflection.",
		InvocationMode: models.ModePostAction,
		TriggerSource:  models.TriggerUserRequested,
		Timestamp:      time.Now().UTC(),
	}

	_, err := orch.Run(context.Background(), req, expression.DefaultPreferences())
	require.NoError(t, err)
	_, err = orch.Run(context.Background(), req, expression.DefaultPreferences())
	require.NoError(t, err)

	require.Len(t, sealer.sealed, 2)
	assert.Empty(t, sealer.sealed[0].PrevHash)
	assert.Equal(t, sealer.sealed[0].RecordHash, sealer.sealed[1].PrevHash)
}

func TestOrchestrator_HardAxiomViolationOnOutputIsUnsafe(t *testing.T) {
	sealer := &fakeSealer{}
	gen := &fakeGenerator{text: "You should definitely start journaling daily."}
	orch := newTestOrchestrator(t, gen, sealer)

	req := models.Request{
		UserID:         "user-6",
		InputText:      "I finished my reflection for today.",
		InvocationMode: models.ModePostAction,
		TriggerSource:  models.TriggerUserCompletedWriting,
		Timestamp:      time.Now().UTC(),
	}

	resp, err := orch.Run(context.Background(), req, expression.DefaultPreferences())
	require.NoError(t, err)
	assert.False(t, resp.Safe)
	require.NotEmpty(t, resp.Violations)
	found := false
	for _, v := range resp.Violations {
		if v.InvariantID == "I1" && v.Severity == models.SeverityHard {
			found = true
		}
	}
	assert.True(t, found, "expected an I1 HARD violation, got %+v", resp.Violations)
	require.Len(t, sealer.sealed, 1)
	assert.Equal(t, []string{"safety", "axiom_in", "semantic", "generate", "axiom_out", "audit"}, sealer.sealed[0].LayersExecuted)
}

func TestOrchestrator_InvocationContractRejectsEmptyPostAction(t *testing.T) {
	sealer := &fakeSealer{}
	gen := &fakeGenerator{text: "should never be used"}
	orch := newTestOrchestrator(t, gen, sealer)

	req := models.Request{
		UserID:         "user-5",
		InputText:      "",
		InvocationMode: models.ModePostAction,
		Timestamp:      time.Now().UTC(),
	}

	resp, err := orch.Run(context.Background(), req, expression.DefaultPreferences())
	require.NoError(t, err)
	assert.False(t, resp.Safe)
	require.Len(t, resp.Violations, 1)
	assert.Equal(t, "INVOCATION", resp.Violations[0].InvariantID)
	require.Len(t, sealer.sealed, 1)
	assert.Equal(t, []string{"invocation", "audit"}, sealer.sealed[0].LayersExecuted)
	assert.Equal(t, 0, gen.calls)
}
