package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Pricing holds AI cost-estimation settings and optional persona display
// labels, loadable from a YAML file.
type Pricing struct {
	// TokenCostRate is the estimated cost per 1000 tokens, in cost-units.
	TokenCostRate float64 `yaml:"token_cost_rate"`
	// PersonaLabels maps persona tags to display labels.
	PersonaLabels map[string]string `yaml:"persona_labels"`
}

// DefaultPricing matches the rate the dashboard has always assumed.
func DefaultPricing() *Pricing {
	return &Pricing{
		TokenCostRate: 0.002,
		PersonaLabels: map[string]string{},
	}
}

// LoadPricing reads a pricing file, falling back to defaults for fields the
// file omits. An empty path returns defaults without touching the disk.
func LoadPricing(path string) (*Pricing, error) {
	pricing := DefaultPricing()
	if path == "" {
		return pricing, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pricing file: %w", err)
	}

	var file Pricing
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse pricing file: %w", err)
	}

	if file.TokenCostRate > 0 {
		pricing.TokenCostRate = file.TokenCostRate
	}
	if file.PersonaLabels != nil {
		pricing.PersonaLabels = file.PersonaLabels
	}

	return pricing, nil
}
