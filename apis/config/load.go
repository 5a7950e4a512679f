// Package config loads and validates IndicatorConfiguration files.
package config

import (
	"fmt"
	"math"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/moo-lab/hypervolume/apis/config/v1alpha1"
	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
	"github.com/moo-lab/hypervolume/pkg/multiobjective/indicators"
)

// Load reads, defaults and validates the configuration file at path.
func Load(path string) (*v1alpha1.IndicatorConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a YAML or JSON configuration, rejecting unknown fields.
func Decode(data []byte) (*v1alpha1.IndicatorConfiguration, error) {
	cfg := &v1alpha1.IndicatorConfiguration{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%v: %w", err, framework.ErrInvalidConfiguration)
	}
	if cfg.APIVersion != "" && cfg.APIVersion != v1alpha1.SchemeGroupVersion {
		return nil, fmt.Errorf("unsupported apiVersion %q, want %q: %w", cfg.APIVersion, v1alpha1.SchemeGroupVersion, framework.ErrInvalidConfiguration)
	}
	if cfg.Kind != "" && cfg.Kind != v1alpha1.Kind {
		return nil, fmt.Errorf("unsupported kind %q, want %q: %w", cfg.Kind, v1alpha1.Kind, framework.ErrInvalidConfiguration)
	}
	v1alpha1.SetDefaults_IndicatorConfiguration(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every requested indicator has the reference data it
// needs.
func Validate(cfg *v1alpha1.IndicatorConfiguration) error {
	if cfg.Offset != nil && (math.IsNaN(*cfg.Offset) || *cfg.Offset < 0) {
		return fmt.Errorf("offset must be a non-negative number: %w", framework.ErrInvalidConfiguration)
	}
	for i, v := range cfg.ReferencePoint {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("referencePoint[%d] is not finite: %w", i, framework.ErrInvalidConfiguration)
		}
	}

	kinds, err := Kinds(cfg)
	if err != nil {
		return err
	}
	for _, kind := range kinds {
		switch kind {
		case indicators.KindHypervolume:
			if len(cfg.ReferencePoint) == 0 && cfg.ReferenceFrontFile == "" {
				return fmt.Errorf("%v needs referencePoint or referenceFrontFile: %w", kind, framework.ErrInvalidConfiguration)
			}
		default:
			if cfg.ReferenceFrontFile == "" {
				return fmt.Errorf("%v needs referenceFrontFile: %w", kind, framework.ErrInvalidConfiguration)
			}
		}
	}
	return nil
}

// Kinds resolves the configured indicator names, in order.
func Kinds(cfg *v1alpha1.IndicatorConfiguration) ([]indicators.Kind, error) {
	if len(cfg.Indicators) == 0 {
		return nil, fmt.Errorf("no indicators configured: %w", framework.ErrInvalidConfiguration)
	}
	kinds := make([]indicators.Kind, 0, len(cfg.Indicators))
	for _, name := range cfg.Indicators {
		kind, err := indicators.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// Reference loads the reference data the configuration points at.
func Reference(cfg *v1alpha1.IndicatorConfiguration) (indicators.Reference, error) {
	ref := indicators.Reference{}
	if len(cfg.ReferencePoint) > 0 {
		ref.Point = framework.ObjectiveSpacePoint(cfg.ReferencePoint).Clone()
	}
	if cfg.Offset != nil {
		ref.Offset = *cfg.Offset
	}
	if cfg.ReferenceFrontFile != "" {
		front, err := framework.ReadFrontFile(cfg.ReferenceFrontFile)
		if err != nil {
			return ref, err
		}
		ref.Front = front
	}
	return ref, nil
}
