package config

import (
	"fmt"
	"os"

	"vastuguru-api/internal/domain/catalog"

	"gopkg.in/yaml.v3"
)

// TierConfig is the optional YAML file behind TIER_CONFIG_PATH:
//
//	thresholds:
//	  basic_max: 15000
//	  silver_max: 30000
//	  gold_max: 60000
//	styles:
//	  basic: {gradient: "...", button: "...", icon: "...", badge: "..."}
type TierConfig struct {
	Thresholds catalog.Thresholds
	Styles     catalog.StyleTable
}

type tierFile struct {
	Thresholds *catalog.Thresholds      `yaml:"thresholds"`
	Styles     map[string]catalog.Style `yaml:"styles"`
}

func DefaultTierConfig() TierConfig {
	return TierConfig{
		Thresholds: catalog.DefaultThresholds(),
		Styles:     catalog.DefaultStyles(),
	}
}

// LoadTierConfig reads path, falling back to defaults for any section the
// file leaves out. An empty path returns the defaults.
func LoadTierConfig(path string) (TierConfig, error) {
	cfg := DefaultTierConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return TierConfig{}, fmt.Errorf("read tier config: %w", err)
	}
	return ParseTierConfig(raw)
}

func ParseTierConfig(raw []byte) (TierConfig, error) {
	cfg := DefaultTierConfig()

	var f tierFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return TierConfig{}, fmt.Errorf("parse tier config: %w", err)
	}

	if f.Thresholds != nil {
		cfg.Thresholds = *f.Thresholds
	}
	if len(f.Styles) > 0 {
		cfg.Styles = make(catalog.StyleTable, len(f.Styles))
		for name, style := range f.Styles {
			tier, err := catalog.ParseTier(name)
			if err != nil {
				return TierConfig{}, fmt.Errorf("tier config styles: %w", err)
			}
			cfg.Styles[tier] = style
		}
	}

	if err := cfg.Thresholds.Validate(); err != nil {
		return TierConfig{}, err
	}
	if err := cfg.Styles.Validate(); err != nil {
		return TierConfig{}, err
	}
	return cfg, nil
}
