package stripe

import (
	"testing"

	"vastuguru-api/internal/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importable() CatalogPrice {
	return CatalogPrice{
		ID:          "price_1",
		ProductID:   "prod_pkg",
		ProductName: "Astrology Gold",
		Active:      true,
		Currency:    "inr",
		UnitAmount:  4500000,
		Metadata: map[string]string{
			"category": "Astrology",
			"features": "Kundli review | 2 calls ||Remedies",
		},
	}
}

func TestSkipReason(t *testing.T) {
	assert.Empty(t, SkipReason(importable(), "prod_pkg"))
	assert.Empty(t, SkipReason(importable(), ""))

	p := importable()
	p.Active = false
	assert.Equal(t, "inactive", SkipReason(p, ""))

	p = importable()
	p.Recurring = true
	assert.Equal(t, "recurring", SkipReason(p, ""))

	assert.Equal(t, "other product", SkipReason(importable(), "prod_other"))

	p = importable()
	p.Currency = "eur"
	assert.Equal(t, "currency", SkipReason(p, ""))

	p = importable()
	p.Metadata["visible"] = "false"
	assert.Equal(t, "hidden", SkipReason(p, ""))

	p = importable()
	p.UnitAmount = 4500050
	assert.Equal(t, "fractional amount", SkipReason(p, ""))
}

func TestApplyToService(t *testing.T) {
	var s services.Service
	ApplyToService(importable(), &s)

	assert.Equal(t, "Astrology Gold", s.Title)
	assert.EqualValues(t, 45000, s.Price)
	assert.Equal(t, services.CategoryAstrology, s.Category)
	assert.Equal(t, services.TypePackage, s.ServiceType)
	assert.True(t, s.IsActive)
	assert.Equal(t, []string{"Kundli review", "2 calls", "Remedies"}, s.Features)
	require.NotNil(t, s.StripePriceID)
	assert.Equal(t, "price_1", *s.StripePriceID)
	assert.NoError(t, s.Validate())
}

func TestApplyToService_UnknownCategoryFallsBack(t *testing.T) {
	p := importable()
	p.Metadata = nil

	var s services.Service
	ApplyToService(p, &s)
	assert.Equal(t, services.CategoryOther, s.Category)
	assert.NotNil(t, s.Features)
}
