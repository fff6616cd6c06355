package config

import (
	"time"

	"dario.cat/mergo"

	"github.com/axiom-guard/boundary/pkg/safety"
)

// defaultDerivedCacheTTL and defaultCleanupInterval bound the in-memory
// derived-view cache (identity graphs, MirrorScore state, provider
// health EMA) pkg/cleanup sweeps.
const (
	defaultDerivedCacheTTL = 24 * time.Hour
	defaultCleanupInterval = time.Hour
	defaultJurisdiction    = "US"
)

// DefaultRulebook is the built-in rulebook, used when boundary.yaml
// omits the rulebook section entirely.
func DefaultRulebook() RulebookConfig {
	return RulebookConfig{DefaultJurisdiction: defaultJurisdiction}
}

// DefaultCrisisResources is the built-in jurisdiction table: a single US
// entry carrying a 988 reference.
func DefaultCrisisResources() map[string]safety.Resources {
	return map[string]safety.Resources{
		defaultJurisdiction: safety.DefaultResources(),
	}
}

// DefaultProviderPoolConfig is the built-in pool shape: round-robin over
// whatever providers cmd/boundaryd wires in, absent any explicit
// provider config.
func DefaultProviderPoolConfig() ProviderPoolConfig {
	return ProviderPoolConfig{Strategy: "round_robin"}
}

// DefaultRetentionConfig is the built-in derived-cache retention policy.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		DerivedCacheTTL: defaultDerivedCacheTTL,
		CleanupInterval: defaultCleanupInterval,
	}
}

// resourcesFromYAML converts the wire shape into safety.Resources.
func resourcesFromYAML(y ResourcesYAML) safety.Resources {
	return safety.Resources{
		SuicidalCritical: y.SuicidalCritical,
		SuicidalAlert:    y.SuicidalAlert,
		SuicidalWatch:    y.SuicidalWatch,
		SelfHarmCritical: y.SelfHarmCritical,
		SelfHarmAlert:    y.SelfHarmAlert,
		SelfHarmWatch:    y.SelfHarmWatch,
		AbuseCritical:    y.AbuseCritical,
		AbuseAlert:       y.AbuseAlert,
		AbuseWatch:       y.AbuseWatch,
		CrisisCritical:   y.CrisisCritical,
		CrisisAlert:      y.CrisisAlert,
	}
}

// resolveRetentionConfig resolves retention durations from YAML,
// applying defaults for unset or unparseable values.
func resolveRetentionConfig(y *RetentionYAMLConfig) RetentionConfig {
	cfg := DefaultRetentionConfig()
	if y == nil {
		return cfg
	}
	if y.DerivedCacheTTL != "" {
		if d, err := time.ParseDuration(y.DerivedCacheTTL); err == nil {
			cfg.DerivedCacheTTL = d
		}
	}
	if y.CleanupInterval != "" {
		if d, err := time.ParseDuration(y.CleanupInterval); err == nil {
			cfg.CleanupInterval = d
		}
	}
	return cfg
}

// resolveRulebook resolves the rulebook from YAML, applying the built-in
// default when omitted.
func resolveRulebook(y *RulebookConfig) RulebookConfig {
	if y == nil || y.DefaultJurisdiction == "" {
		return DefaultRulebook()
	}
	return *y
}

// resolveProviderPool merges the YAML-provided pool shape onto the
// built-in default (non-zero YAML values override), the same
// start-from-defaults-then-merge-user-config-on-top idiom the teacher
// uses for its queue config.
func resolveProviderPool(y *ProviderPoolConfig) ProviderPoolConfig {
	cfg := DefaultProviderPoolConfig()
	if y == nil {
		return cfg
	}
	if err := mergo.Merge(&cfg, *y, mergo.WithOverride); err != nil {
		return cfg
	}
	return cfg
}
