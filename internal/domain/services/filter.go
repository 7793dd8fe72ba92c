package services

import "strings"

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Filter mirrors the query string accepted by GET /services.
type Filter struct {
	ServiceType string
	Category    string
	SubCategory string
	IsActive    *bool
	Page        int
	Limit       int
}

// Normalize trims the string fields and clamps paging to sane bounds.
func (f Filter) Normalize() Filter {
	f.ServiceType = strings.TrimSpace(f.ServiceType)
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))
	f.SubCategory = strings.TrimSpace(f.SubCategory)

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Matches reports whether s passes every filter field that is set.
// Paging is not considered.
func (f Filter) Matches(s Service) bool {
	if f.ServiceType != "" && s.ServiceType != f.ServiceType {
		return false
	}
	if f.Category != "" && s.Category != f.Category {
		return false
	}
	if f.SubCategory != "" && s.SubCategory != f.SubCategory {
		return false
	}
	if f.IsActive != nil && s.IsActive != *f.IsActive {
		return false
	}
	return true
}
