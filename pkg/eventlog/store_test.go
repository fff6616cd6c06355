package eventlog

import (
	"context"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	entpkg "github.com/axiom-guard/boundary/ent"
	"github.com/axiom-guard/boundary/pkg/database"
	"github.com/axiom-guard/boundary/pkg/models"
)

// newTestStore spins up a disposable Postgres container, migrates via
// ent's schema auto-creation, and returns a ready Store — grounded on
// tarsy's pkg/database/client_test.go testcontainers setup.
func newTestStore(t *testing.T) *Store {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(pgContainer)
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	drv, err := sql.Open(dialect.Postgres, connStr)
	require.NoError(t, err)

	entClient := entpkg.NewClient(entpkg.Driver(drv))
	require.NoError(t, entClient.Schema.Create(ctx))

	client := database.NewClientFromEnt(entClient, drv.DB())
	t.Cleanup(func() { client.Close() })

	return New(client)
}

func TestStore_AppendAssignsSeqAndChainsHash(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Append(ctx, models.Event{
		InstanceID: "inst-1",
		UserID:     "user-1",
		EventType:  models.EventMetadataDeclared,
		Payload:    map[string]any{"metadata_type": "goal", "content": "run a 5k"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Seq)
	assert.Empty(t, first.PrevHash)
	assert.NotEmpty(t, first.ContentHash)

	second, err := store.Append(ctx, models.Event{
		InstanceID: "inst-1",
		UserID:     "user-1",
		EventType:  models.EventPostureDeclared,
		Payload:    map[string]any{"posture": "open"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Seq)
	assert.Equal(t, first.ContentHash, second.PrevHash)
}

func TestStore_VerifyIntegrityDetectsBreak(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, models.Event{
		InstanceID: "inst-2", UserID: "user-1", EventType: models.EventMetadataDeclared,
		Payload: map[string]any{"metadata_type": "goal", "content": "a"},
	})
	require.NoError(t, err)
	_, err = store.Append(ctx, models.Event{
		InstanceID: "inst-2", UserID: "user-1", EventType: models.EventMetadataDeclared,
		Payload: map[string]any{"metadata_type": "goal", "content": "b"},
	})
	require.NoError(t, err)

	ok, breakAt, err := store.VerifyIntegrity(ctx, "inst-2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, breakAt)

	// Corrupt the chain directly.
	_, err = store.db.ExecContext(ctx,
		`UPDATE events SET prev_hash = 'tampered' WHERE instance_id = $1 AND seq = 2`, "inst-2")
	require.NoError(t, err)

	ok, breakAt, err = store.VerifyIntegrity(ctx, "inst-2")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(2), breakAt)
}

// TestStore_VerifyIntegrityDetectsMutatedPayload is the literal spec.md
// S5 attack: mutate a stored event's payload in place, touching neither
// its content_hash nor prev_hash columns. VerifyIntegrity must still
// catch it by recomputing content_hash fresh from the (now-mutated)
// payload, rather than trusting the stored content_hash column.
func TestStore_VerifyIntegrityDetectsMutatedPayload(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, models.Event{
		InstanceID: "inst-5", UserID: "user-1", EventType: models.EventMetadataDeclared,
		Payload: map[string]any{"metadata_type": "value", "content": "honesty"},
	})
	require.NoError(t, err)
	e2, err := store.Append(ctx, models.Event{
		InstanceID: "inst-5", UserID: "user-1", EventType: models.EventAnnotationConsent,
		Payload: map[string]any{"annotation_content": "tension: honesty vs kindness", "user_consent": "accepted"},
	})
	require.NoError(t, err)
	e3, err := store.Append(ctx, models.Event{
		InstanceID: "inst-5", UserID: "user-1", EventType: models.EventPostureDeclared,
		Payload: map[string]any{"posture": "open"},
	})
	require.NoError(t, err)

	ok, breakAt, err := store.VerifyIntegrity(ctx, "inst-5")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, breakAt)

	// Mutate E2's payload directly, leaving content_hash/prev_hash columns
	// on every row untouched — the attack the content_hash column alone
	// cannot reveal. The break only becomes observable at E3, whose
	// stored prev_hash was computed against E2's original content.
	_, err = store.db.ExecContext(ctx,
		`UPDATE events SET payload = $1 WHERE instance_id = $2 AND seq = $3`,
		[]byte(`{"annotation_content":"tension: honesty vs kindness, mutated","user_consent":"accepted"}`),
		"inst-5", e2.Seq)
	require.NoError(t, err)

	ok, breakAt, err = store.VerifyIntegrity(ctx, "inst-5")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, e3.Seq, breakAt)
}

func TestStore_ExportImportRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, models.Event{
		InstanceID: "inst-3", UserID: "user-1", EventType: models.EventMetadataDeclared,
		Payload: map[string]any{"metadata_type": "value", "content": "honesty"},
	})
	require.NoError(t, err)

	doc, err := store.Export(ctx, "inst-3")
	require.NoError(t, err)
	require.Len(t, doc.Events, 1)

	doc.InstanceID = "inst-3-restored"
	for i := range doc.Events {
		doc.Events[i].InstanceID = "inst-3-restored"
	}
	require.NoError(t, store.Import(ctx, doc))

	restored, err := store.GetEvents(ctx, Filters{InstanceID: "inst-3-restored"})
	require.NoError(t, err)
	require.Len(t, restored, 1)
	assert.Equal(t, int64(1), restored[0].Seq)
	assert.Equal(t, "honesty", restored[0].Content())
}

func TestStore_ReplayStreamsInOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Append(ctx, models.Event{
			InstanceID: "inst-4", UserID: "user-1", EventType: models.EventMetadataDeclared,
			Payload: map[string]any{"metadata_type": "goal", "content": "x"},
		})
		require.NoError(t, err)
	}

	events, errs := store.Replay(ctx, "inst-4", 0)
	var seen []int64
	for e := range events {
		seen = append(seen, e.Seq)
	}
	require.NoError(t, <-errs)
	assert.Equal(t, []int64{1, 2, 3}, seen)
}
