// Package config loads the deployment-tunable packaging configuration.
// The default package-count brackets live in the domain
// (order.DefaultThresholds); a yaml file can override them per deployment.
package config

import (
	"fmt"
	"os"

	"woolabels/internal/core/domain/model/order"

	"gopkg.in/yaml.v3"
)

// Packaging is the tunable packaging section: the order-total brackets at
// which orders split into two and three parcels.
type Packaging struct {
	SinglePackageMax float64 `yaml:"single_package_max"`
	DoublePackageMax float64 `yaml:"double_package_max"`
}

// DefaultPackaging returns the packaging section seeded with the domain
// defaults.
func DefaultPackaging() Packaging {
	defaults := order.DefaultThresholds()
	return Packaging{
		SinglePackageMax: defaults.SingleMax,
		DoublePackageMax: defaults.DoubleMax,
	}
}

// LoadPackaging reads the packaging config from path. An empty path returns
// the defaults; a missing or unreadable file is an error so a mistyped path
// does not silently fall back. Keys absent from the file keep their default
// value, and the resulting brackets are validated before use.
func LoadPackaging(path string) (Packaging, error) {
	packaging := DefaultPackaging()
	if path == "" {
		return packaging, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Packaging{}, fmt.Errorf("failed to read packaging config: %w", err)
	}
	if err := yaml.Unmarshal(data, &packaging); err != nil {
		return Packaging{}, fmt.Errorf("failed to parse packaging config: %w", err)
	}

	if err := packaging.Thresholds().Validate(); err != nil {
		return Packaging{}, err
	}

	return packaging, nil
}

// Thresholds converts the section into domain thresholds.
func (p Packaging) Thresholds() order.Thresholds {
	return order.Thresholds{
		SingleMax: p.SinglePackageMax,
		DoubleMax: p.DoublePackageMax,
	}
}
