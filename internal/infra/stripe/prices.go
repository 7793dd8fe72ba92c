package stripe

import (
	"context"
	"fmt"
	"strings"

	"vastuguru-api/internal/domain/services"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"
)

// CatalogPrice is the subset of a stripe price the service import needs.
type CatalogPrice struct {
	ID          string
	ProductID   string
	ProductName string
	Active      bool
	Currency    string
	UnitAmount  int64 // paise
	Recurring   bool
	Metadata    map[string]string
}

type PriceSource interface {
	ListPrices(ctx context.Context) ([]CatalogPrice, error)
}

type APISource struct {
	api *client.API
}

func NewAPISource(secretKey string) *APISource {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &APISource{api: sc}
}

func (s *APISource) ListPrices(ctx context.Context) ([]CatalogPrice, error) {
	params := &stripe.PriceListParams{}
	params.Context = ctx
	params.Active = stripe.Bool(true)
	params.Type = stripe.String(string(stripe.PriceTypeOneTime))
	params.AddExpand("data.product")

	var out []CatalogPrice
	it := s.api.Prices.List(params)
	for it.Next() {
		p := it.Price()
		cp := CatalogPrice{
			ID:         p.ID,
			Active:     p.Active,
			Currency:   string(p.Currency),
			UnitAmount: p.UnitAmount,
			Recurring:  p.Recurring != nil,
			Metadata:   p.Metadata,
		}
		if p.Product != nil {
			cp.ProductID = p.Product.ID
			cp.ProductName = p.Product.Name
			cp.Active = cp.Active && p.Product.Active
		}
		out = append(out, cp)
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("list stripe prices: %w", err)
	}
	return out, nil
}

// SkipReason explains why a price is not importable; "" means importable.
func SkipReason(p CatalogPrice, productID string) string {
	switch {
	case !p.Active:
		return "inactive"
	case p.Recurring:
		return "recurring"
	case productID != "" && p.ProductID != productID:
		return "other product"
	case p.Currency != "inr":
		return "currency"
	case p.Metadata["visible"] == "false":
		return "hidden"
	case p.UnitAmount < 0 || p.UnitAmount%100 != 0:
		return "fractional amount"
	}
	return ""
}

// ApplyToService copies price data onto s. Metadata keys: title,
// description, category, subCategory, features (pipe separated).
func ApplyToService(p CatalogPrice, s *services.Service) {
	md := p.Metadata
	if md == nil {
		md = map[string]string{}
	}

	title := p.ProductName
	if v := md["title"]; v != "" {
		title = v
	}
	if title != "" {
		s.Title = title
	}
	if v := md["description"]; v != "" {
		s.Description = v
	}

	s.Price = p.UnitAmount / 100
	s.ServiceType = services.TypePackage
	s.IsActive = true

	s.Category = strings.ToLower(strings.TrimSpace(md["category"]))
	if !services.ValidCategory(s.Category) {
		s.Category = services.CategoryOther
	}
	if v := md["subCategory"]; v != "" {
		s.SubCategory = v
	}
	if v := md["features"]; v != "" {
		s.Features = splitFeatures(v)
	}
	if s.Features == nil {
		s.Features = []string{}
	}

	id := p.ID
	s.StripePriceID = &id
}

func splitFeatures(v string) []string {
	parts := strings.Split(v, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
