package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiom-guard/boundary/pkg/models"
)

func TestInitialize_AbsentConfigFileUsesBuiltinDefaults(t *testing.T) {
	ctx := context.Background()
	cfg, err := Initialize(ctx, t.TempDir())

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "US", cfg.Rulebook.DefaultJurisdiction)
	assert.NotEmpty(t, cfg.CrisisResources["US"].SuicidalCritical)
	assert.Equal(t, "round_robin", cfg.Providers.Strategy)
}

func TestInitialize_LoadsAndMergesBoundaryYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "boundary.yaml", `
rulebook:
  default_jurisdiction: CA
crisis_resources:
  CA:
    suicidal_critical:
      - "Talk Suicide Canada: 1-833-456-4566"
providers:
  strategy: least_loaded
  endpoints:
    - id: primary
      weight: 3
    - id: secondary
      tier: deep
mirrorscore_weights:
  open:
    posture_fit: 0.5
    target_coverage: 0.2
    tension_adjacency: 0.1
    diversity: 0.1
    novelty: 0.1
    risk: 0.0
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "CA", cfg.Rulebook.DefaultJurisdiction)
	assert.Equal(t, []string{"Talk Suicide Canada: 1-833-456-4566"}, cfg.CrisisResources["CA"].SuicidalCritical)
	assert.Equal(t, "least_loaded", cfg.Providers.Strategy)
	require.Len(t, cfg.Providers.Endpoints, 2)
	assert.Equal(t, "primary", cfg.Providers.Endpoints[0].ID)

	w := cfg.WeightsFor(models.PostureOpen)
	assert.Equal(t, 0.5, w.PostureFit)
	// Untouched postures keep the spec default table.
	guarded := cfg.WeightsFor(models.PostureGuarded)
	assert.Equal(t, 0.25, guarded.PostureFit)
}

func TestInitialize_MissingDefaultJurisdictionResourcesFailsValidation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "boundary.yaml", `
rulebook:
  default_jurisdiction: FR
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FR")
}

func TestInitialize_DuplicateProviderEndpointFailsValidation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "boundary.yaml", `
providers:
  endpoints:
    - id: dup
    - id: dup
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate provider id")
}

func TestExpandEnv_SubstitutesShellStyleVariables(t *testing.T) {
	t.Setenv("BOUNDARY_TEST_VAR", "resolved")
	out := ExpandEnv([]byte("value: ${BOUNDARY_TEST_VAR}"))
	assert.Equal(t, "value: resolved", string(out))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
