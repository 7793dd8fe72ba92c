package catalog

import (
	"errors"
	"fmt"
	"strings"
)

type Tier string

// Tier constants (single source of truth)
const (
	TierBasic    Tier = "Basic"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

// Tiers lists every tier in ascending price order.
var Tiers = []Tier{TierBasic, TierSilver, TierGold, TierPlatinum}

var (
	ErrInvalidPrice      = errors.New("invalid price")
	ErrInvalidThresholds = errors.New("invalid tier thresholds")
	ErrUnknownTier       = errors.New("unknown tier")
)

// Thresholds holds the inclusive upper bound of every tier except the
// last one. Anything above GoldMax is Platinum.
type Thresholds struct {
	BasicMax  int64 `json:"basicMax" yaml:"basic_max"`
	SilverMax int64 `json:"silverMax" yaml:"silver_max"`
	GoldMax   int64 `json:"goldMax" yaml:"gold_max"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		BasicMax:  15000,
		SilverMax: 30000,
		GoldMax:   60000,
	}
}

// Validate requires 0 <= BasicMax < SilverMax < GoldMax so the tiers
// cover every non-negative price with no gap or overlap.
func (t Thresholds) Validate() error {
	if t.BasicMax < 0 {
		return fmt.Errorf("%w: basic max %d is negative", ErrInvalidThresholds, t.BasicMax)
	}
	if t.SilverMax <= t.BasicMax {
		return fmt.Errorf("%w: silver max %d must exceed basic max %d", ErrInvalidThresholds, t.SilverMax, t.BasicMax)
	}
	if t.GoldMax <= t.SilverMax {
		return fmt.Errorf("%w: gold max %d must exceed silver max %d", ErrInvalidThresholds, t.GoldMax, t.SilverMax)
	}
	return nil
}

// Classify maps a price to its tier. Negative prices are rejected.
func (t Thresholds) Classify(price int64) (Tier, error) {
	if price < 0 {
		return "", fmt.Errorf("%w: %d is negative", ErrInvalidPrice, price)
	}
	switch {
	case price <= t.BasicMax:
		return TierBasic, nil
	case price <= t.SilverMax:
		return TierSilver, nil
	case price <= t.GoldMax:
		return TierGold, nil
	default:
		return TierPlatinum, nil
	}
}

// Classify uses the default thresholds.
func Classify(price int64) (Tier, error) {
	return DefaultThresholds().Classify(price)
}

// ParseTier accepts a tier name in any letter case.
func ParseTier(s string) (Tier, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Tiers {
		if strings.ToLower(string(t)) == v {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

func (t Tier) Known() bool {
	for _, k := range Tiers {
		if k == t {
			return true
		}
	}
	return false
}
