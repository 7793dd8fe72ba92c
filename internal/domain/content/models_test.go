package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSections_FillsDefaults(t *testing.T) {
	got := FromSections([]Section{
		{Key: SectionPremium, Subtitle: "One-to-one kundli reading"},
		{Key: SectionFree, Subtitle: ""},
	})

	assert.Equal(t, "Briefly describe your core offerings here.", got.ServicesSection.Subtitle)
	assert.Equal(t, "One-to-one kundli reading", got.PremiumSection.Subtitle)
	assert.Equal(t, "Describe free tools and resources offered.", got.FreeSection.Subtitle)
}

func TestHomeContent_SectionsRoundTrip(t *testing.T) {
	h := HomeContent{
		ServicesSection: SectionBody{Subtitle: "s"},
		PremiumSection:  SectionBody{Subtitle: "p"},
		FreeSection:     SectionBody{Subtitle: "f"},
	}
	assert.Equal(t, h, FromSections(h.Sections()))
}
