package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator validates configuration comprehensively with clear error
// messages, checking in fixed stages: struct tags, then crisis
// resources, then providers.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll performs comprehensive validation, stopping at the first
// failure.
func (v *Validator) ValidateAll() error {
	if err := v.validateStructTags(); err != nil {
		return err
	}
	if err := v.validateCrisisResources(); err != nil {
		return fmt.Errorf("crisis resources: %w", err)
	}
	if err := v.validateProviders(); err != nil {
		return fmt.Errorf("providers: %w", err)
	}
	return nil
}

func (v *Validator) validateStructTags() error {
	validate := validator.New()
	if err := validate.Struct(&v.cfg.Rulebook); err != nil {
		return fmt.Errorf("%w: rulebook: %v", ErrValidationFailed, err)
	}
	if err := validate.Struct(&v.cfg.Providers); err != nil {
		return fmt.Errorf("%w: providers: %v", ErrValidationFailed, err)
	}
	for id, endpoint := range v.cfg.Providers.Endpoints {
		if err := validate.Struct(&endpoint); err != nil {
			return NewValidationError("provider_endpoint", fmt.Sprintf("[%d]", id), err)
		}
	}
	return nil
}

// validateCrisisResources requires the configured default jurisdiction to
// actually have a resource entry — otherwise ResourcesFor silently
// returns a zero-value Resources for every request, surfacing a crisis
// signal with no resources attached.
func (v *Validator) validateCrisisResources() error {
	if _, ok := v.cfg.CrisisResources[v.cfg.Rulebook.DefaultJurisdiction]; !ok {
		return NewValidationError("rulebook", "default_jurisdiction",
			fmt.Errorf("%q has no crisis_resources entry", v.cfg.Rulebook.DefaultJurisdiction))
	}
	return nil
}

func (v *Validator) validateProviders() error {
	seen := make(map[string]bool, len(v.cfg.Providers.Endpoints))
	for _, e := range v.cfg.Providers.Endpoints {
		if seen[e.ID] {
			return NewValidationError("providers", "endpoints", fmt.Errorf("duplicate provider id %q", e.ID))
		}
		seen[e.ID] = true
	}
	return nil
}
