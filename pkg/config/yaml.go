package config

// BoundaryYAMLConfig represents the complete boundary.yaml file structure.
// Every section is optional; omitted sections fall back to built-in
// defaults (defaults.go).
type BoundaryYAMLConfig struct {
	Rulebook        *RulebookConfig          `yaml:"rulebook,omitempty"`
	CrisisResources map[string]ResourcesYAML `yaml:"crisis_resources,omitempty"`
	MirrorScore     map[string]WeightsYAML   `yaml:"mirrorscore_weights,omitempty"`
	Providers       *ProviderPoolConfig      `yaml:"providers,omitempty"`
	Retention       *RetentionYAMLConfig     `yaml:"retention,omitempty"`
}

// ResourcesYAML mirrors safety.Resources with YAML tags; pkg/safety's
// own type stays free of serialization concerns, using a dedicated
// *YAML shape per domain type that the loader converts.
type ResourcesYAML struct {
	SuicidalCritical []string `yaml:"suicidal_critical,omitempty"`
	SuicidalAlert    []string `yaml:"suicidal_alert,omitempty"`
	SuicidalWatch    []string `yaml:"suicidal_watch,omitempty"`
	SelfHarmCritical []string `yaml:"self_harm_critical,omitempty"`
	SelfHarmAlert    []string `yaml:"self_harm_alert,omitempty"`
	SelfHarmWatch    []string `yaml:"self_harm_watch,omitempty"`
	AbuseCritical    []string `yaml:"abuse_critical,omitempty"`
	AbuseAlert       []string `yaml:"abuse_alert,omitempty"`
	AbuseWatch       []string `yaml:"abuse_watch,omitempty"`
	CrisisCritical   []string `yaml:"crisis_critical,omitempty"`
	CrisisAlert      []string `yaml:"crisis_alert,omitempty"`
}

// WeightsYAML mirrors mirrorscore.Weights with YAML tags.
type WeightsYAML struct {
	PostureFit       float64 `yaml:"posture_fit"`
	TargetCoverage   float64 `yaml:"target_coverage"`
	TensionAdjacency float64 `yaml:"tension_adjacency"`
	Diversity        float64 `yaml:"diversity"`
	Novelty          float64 `yaml:"novelty"`
	Risk             float64 `yaml:"risk"`
}

// RetentionYAMLConfig holds retention durations as parseable strings
// (e.g. "24h"): string-in-YAML, time.Duration-in-Config.
type RetentionYAMLConfig struct {
	DerivedCacheTTL string `yaml:"derived_cache_ttl,omitempty"`
	CleanupInterval string `yaml:"cleanup_interval,omitempty"`
}
