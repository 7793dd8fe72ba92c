package catalog

import (
	"cmp"
	"fmt"
	"slices"

	"vastuguru-api/internal/domain/services"
)

// Plan is the presentation-ready view of a service.
type Plan struct {
	ID           string   `json:"id"`
	Tier         Tier     `json:"tier"`
	Price        int64    `json:"price"`
	DisplayPrice string   `json:"displayPrice"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
}

type PlanActions struct {
	Edit   string `json:"edit"`
	Delete string `json:"delete"`
}

// AdminPlan keeps what the admin package grid needs to address the
// backing service record.
type AdminPlan struct {
	Plan
	Title       string      `json:"title"`
	SubCategory string      `json:"subCategory"`
	IsActive    bool        `json:"isActive"`
	Actions     PlanActions `json:"actions"`
}

// Builder turns services into ordered plans. It is immutable after
// NewBuilder and safe for concurrent use.
type Builder struct {
	thresholds Thresholds
	formatter  *PriceFormatter
}

func NewBuilder(t Thresholds, f *PriceFormatter) (*Builder, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("price formatter is nil")
	}
	return &Builder{thresholds: t, formatter: f}, nil
}

// DefaultBuilder uses the default thresholds and the en-IN locale.
func DefaultBuilder() *Builder {
	f, err := NewPriceFormatter(DefaultLocale)
	if err != nil {
		panic(err)
	}
	return &Builder{thresholds: DefaultThresholds(), formatter: f}
}

func (b *Builder) Thresholds() Thresholds { return b.thresholds }

func (b *Builder) Locale() string { return b.formatter.Locale() }

func (b *Builder) Classify(price int64) (Tier, error) {
	return b.thresholds.Classify(price)
}

func (b *Builder) FormatPrice(price int64) string {
	return b.formatter.Format(price)
}

// Build returns one plan per service, sorted by ascending price. Services
// with equal prices keep their input order. The input is not modified.
func (b *Builder) Build(svcs []services.Service) ([]Plan, error) {
	out := make([]Plan, 0, len(svcs))
	for i := range svcs {
		p, err := b.plan(&svcs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	slices.SortStableFunc(out, func(a, b Plan) int {
		return cmp.Compare(a.Price, b.Price)
	})
	return out, nil
}

// BuildAdmin is Build for the admin package grid.
func (b *Builder) BuildAdmin(svcs []services.Service) ([]AdminPlan, error) {
	out := make([]AdminPlan, 0, len(svcs))
	for i := range svcs {
		s := &svcs[i]
		p, err := b.plan(s)
		if err != nil {
			return nil, err
		}
		out = append(out, AdminPlan{
			Plan:        p,
			Title:       s.Title,
			SubCategory: s.SubCategory,
			IsActive:    s.IsActive,
			Actions: PlanActions{
				Edit:   s.ID,
				Delete: s.ID,
			},
		})
	}
	slices.SortStableFunc(out, func(a, b AdminPlan) int {
		return cmp.Compare(a.Price, b.Price)
	})
	return out, nil
}

func (b *Builder) plan(s *services.Service) (Plan, error) {
	tier, err := b.thresholds.Classify(s.Price)
	if err != nil {
		return Plan{}, fmt.Errorf("service %s: %w", s.ID, err)
	}

	features := make([]string, len(s.Features))
	copy(features, s.Features)

	return Plan{
		ID:           s.ID,
		Tier:         tier,
		Price:        s.Price,
		DisplayPrice: b.formatter.Format(s.Price),
		Description:  s.Description,
		Features:     features,
	}, nil
}

// BuildCatalog uses DefaultBuilder.
func BuildCatalog(svcs []services.Service) ([]Plan, error) {
	return DefaultBuilder().Build(svcs)
}
