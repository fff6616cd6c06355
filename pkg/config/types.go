package config

import (
	"time"

	"github.com/axiom-guard/boundary/pkg/mirrorscore"
	"github.com/axiom-guard/boundary/pkg/models"
	"github.com/axiom-guard/boundary/pkg/safety"
)

// Config is the fully loaded, validated, ready-to-use configuration for
// one boundaryd process. Constructed once at startup by Initialize and
// passed explicitly to every component that needs it — no globals.
type Config struct {
	configDir string

	Rulebook           RulebookConfig
	CrisisResources    map[string]safety.Resources
	MirrorScoreWeights map[models.Posture]mirrorscore.Weights
	Providers          ProviderPoolConfig
	Retention          RetentionConfig
}

// ConfigDir returns the configuration directory this Config was loaded
// from.
func (c *Config) ConfigDir() string { return c.configDir }

// ResourcesFor returns the crisis resource set for a jurisdiction code,
// falling back to the configured default jurisdiction, and finally to a
// zero-value Resources if even the default is unconfigured.
func (c *Config) ResourcesFor(jurisdiction string) safety.Resources {
	if r, ok := c.CrisisResources[jurisdiction]; ok {
		return r
	}
	return c.CrisisResources[c.Rulebook.DefaultJurisdiction]
}

// WeightsFor returns the MirrorScore weight table for a posture, falling
// back to the built-in default table for any posture the loaded config
// doesn't override.
func (c *Config) WeightsFor(posture models.Posture) mirrorscore.Weights {
	if w, ok := c.MirrorScoreWeights[posture]; ok {
		return w
	}
	return mirrorscore.DefaultScoreWeights[posture]
}

// RulebookConfig carries the operator-tunable parameters that stay
// config rather than code — which jurisdiction's crisis resources apply
// absent an explicit one on the request.
type RulebookConfig struct {
	DefaultJurisdiction string `yaml:"default_jurisdiction" validate:"required"`
}

// ProviderEndpointConfig names one pool member for pkg/provider's health-
// gated Pool, by ID only: constructing the actual Provider (API keys,
// transport wiring) happens at startup in cmd/boundaryd, not here.
type ProviderEndpointConfig struct {
	ID     string `yaml:"id" validate:"required"`
	Weight int    `yaml:"weight,omitempty" validate:"omitempty,min=1"`
	Tier   string `yaml:"tier,omitempty"`
}

// ProviderPoolConfig configures pkg/provider's Pool/TieredRouter shape.
type ProviderPoolConfig struct {
	Strategy  string                   `yaml:"strategy,omitempty" validate:"omitempty,oneof=round_robin least_loaded weighted latency_ema"`
	Endpoints []ProviderEndpointConfig `yaml:"endpoints,omitempty" validate:"omitempty,dive"`
}

// RetentionConfig governs how long derived (non-authoritative) state
// lives before eviction — event log rows themselves are retained
// indefinitely; this only bounds the in-memory derived-view cache
// pkg/cleanup sweeps (identity graphs, MirrorScore state, provider
// health EMA).
type RetentionConfig struct {
	DerivedCacheTTL time.Duration `validate:"omitempty,min=0"`
	CleanupInterval time.Duration `validate:"omitempty,min=0"`
}
