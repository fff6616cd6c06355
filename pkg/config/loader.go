package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/axiom-guard/boundary/pkg/mirrorscore"
	"github.com/axiom-guard/boundary/pkg/models"
)

// configFileName is the single YAML file Initialize reads from
// configDir. Provider and rulebook config live together here rather
// than in separate files — this config is small enough for one.
const configFileName = "boundary.yaml"

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("configuration initialized",
		"default_jurisdiction", cfg.Rulebook.DefaultJurisdiction,
		"jurisdictions", len(cfg.CrisisResources),
		"provider_strategy", cfg.Providers.Strategy,
		"provider_endpoints", len(cfg.Providers.Endpoints))

	return cfg, nil
}

// load is the internal loader. A missing boundary.yaml is not an error —
// Initialize is expected to run with nothing but built-in defaults in
// tests and in minimal deployments.
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	yamlCfg, err := loader.loadBoundaryYAML()
	if err != nil {
		return nil, NewLoadError(configFileName, err)
	}

	crisisResources := DefaultCrisisResources()
	for jurisdiction, y := range yamlCfg.CrisisResources {
		crisisResources[jurisdiction] = resourcesFromYAML(y)
	}

	mirrorWeights := make(map[models.Posture]mirrorscore.Weights, len(mirrorscore.DefaultScoreWeights))
	for posture, w := range mirrorscore.DefaultScoreWeights {
		mirrorWeights[posture] = w
	}
	for postureName, y := range yamlCfg.MirrorScore {
		mirrorWeights[models.Posture(postureName)] = mirrorscore.Weights{
			PostureFit:       y.PostureFit,
			TargetCoverage:   y.TargetCoverage,
			TensionAdjacency: y.TensionAdjacency,
			Diversity:        y.Diversity,
			Novelty:          y.Novelty,
			Risk:             y.Risk,
		}
	}

	return &Config{
		configDir:          configDir,
		Rulebook:           resolveRulebook(yamlCfg.Rulebook),
		CrisisResources:    crisisResources,
		MirrorScoreWeights: mirrorWeights,
		Providers:          resolveProviderPool(yamlCfg.Providers),
		Retention:          resolveRetentionConfig(yamlCfg.Retention),
	}, nil
}

// validate performs comprehensive validation on loaded configuration.
func validate(cfg *Config) error {
	return NewValidator(cfg).ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // absent file: caller's zero-value target stands, defaults apply
		}
		return err
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}

func (l *configLoader) loadBoundaryYAML() (*BoundaryYAMLConfig, error) {
	var cfg BoundaryYAMLConfig
	if err := l.loadYAML(configFileName, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
