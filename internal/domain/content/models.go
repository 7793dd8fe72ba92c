package content

import (
	"context"
	"time"
)

const (
	SectionServices = "servicesSection"
	SectionPremium  = "premiumSection"
	SectionFree     = "freeSection"
)

// Sections lists the home page sections in display order.
var Sections = []string{SectionServices, SectionPremium, SectionFree}

var defaultSubtitles = map[string]string{
	SectionServices: "Briefly describe your core offerings here.",
	SectionPremium:  "Explain premium consultations or products.",
	SectionFree:     "Describe free tools and resources offered.",
}

// Section is one editable block of the home page.
type Section struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Subtitle  string    `gorm:"not null;default:''" json:"subtitle"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SectionBody struct {
	Subtitle string `json:"subtitle"`
}

// HomeContent is the document shape the home page editor reads and writes.
type HomeContent struct {
	ServicesSection SectionBody `json:"servicesSection"`
	PremiumSection  SectionBody `json:"premiumSection"`
	FreeSection     SectionBody `json:"freeSection"`
}

type Repository interface {
	ListSections(ctx context.Context) ([]Section, error)
	SaveSections(ctx context.Context, sections []Section) error

	// GetAbout returns EmptyAbout when nothing was saved yet.
	GetAbout(ctx context.Context) (About, error)
	SaveAbout(ctx context.Context, a *About) error
}

// FromSections assembles the document, using default subtitles for
// sections that are missing or blank.
func FromSections(rows []Section) HomeContent {
	byKey := make(map[string]string, len(rows))
	for _, r := range rows {
		byKey[r.Key] = r.Subtitle
	}
	pick := func(key string) SectionBody {
		if v := byKey[key]; v != "" {
			return SectionBody{Subtitle: v}
		}
		return SectionBody{Subtitle: defaultSubtitles[key]}
	}
	return HomeContent{
		ServicesSection: pick(SectionServices),
		PremiumSection:  pick(SectionPremium),
		FreeSection:     pick(SectionFree),
	}
}

func (h HomeContent) Sections() []Section {
	return []Section{
		{Key: SectionServices, Subtitle: h.ServicesSection.Subtitle},
		{Key: SectionPremium, Subtitle: h.PremiumSection.Subtitle},
		{Key: SectionFree, Subtitle: h.FreeSection.Subtitle},
	}
}
