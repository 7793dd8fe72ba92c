package catalog

import (
	"errors"
	"fmt"
)

var ErrMissingStyle = errors.New("missing tier style")

// Style is the visual treatment of a pricing card.
type Style struct {
	Gradient string `json:"gradient" yaml:"gradient"`
	Button   string `json:"button" yaml:"button"`
	Icon     string `json:"icon" yaml:"icon"`
	Badge    string `json:"badge" yaml:"badge"`
}

// StyleTable is maintained separately from the thresholds, so lookups
// must not assume every tier is present.
type StyleTable map[Tier]Style

const (
	logoGradient = "bg-gradient-to-r from-[#610908] to-[#c41210] text-white"
	whiteButton  = "bg-white text-[#610908] hover:bg-gray-100"
	whiteIcon    = "text-white"
	glassBadge   = "bg-white/20 text-white"
)

func DefaultStyles() StyleTable {
	base := Style{
		Gradient: logoGradient,
		Button:   whiteButton,
		Icon:     whiteIcon,
		Badge:    glassBadge,
	}
	return StyleTable{
		TierBasic:    base,
		TierSilver:   base,
		TierGold:     base,
		TierPlatinum: base,
	}
}

func (st StyleTable) Lookup(t Tier) (Style, error) {
	s, ok := st[t]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrMissingStyle, t)
	}
	return s, nil
}

// Validate requires one entry per known tier and nothing else.
func (st StyleTable) Validate() error {
	for _, t := range Tiers {
		if _, ok := st[t]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingStyle, t)
		}
	}
	for t := range st {
		if !t.Known() {
			return fmt.Errorf("%w: %q in style table", ErrUnknownTier, t)
		}
	}
	return nil
}
