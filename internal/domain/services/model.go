package services

import (
	"errors"
	"time"
)

// Service types
const (
	TypePackage      = "package"
	TypeConsultation = "consultation"
	TypeService      = "service"
)

// Categories offered by the business.
const (
	CategoryVastu      = "vastu"
	CategoryAstrology  = "astrology"
	CategoryNumerology = "numerology"
	CategorySpiritual  = "spiritual"
	CategoryOther      = "other"
)

var (
	ErrNotFound        = errors.New("service not found")
	ErrInvalidType     = errors.New("invalid service type")
	ErrInvalidCategory = errors.New("invalid category")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrMissingTitle    = errors.New("title is required")
)

type Service struct {
	ID          string   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Title       string   `gorm:"not null" json:"title"`
	Slug        string   `gorm:"not null;uniqueIndex:idx_services_slug" json:"slug"`
	Price       int64    `gorm:"not null;index" json:"price"` // whole rupees
	Description string   `json:"description"`
	Features    []string `gorm:"serializer:json;type:jsonb" json:"features"`

	Category    string `gorm:"not null;index" json:"category"`
	SubCategory string `gorm:"index" json:"subCategory"`
	ServiceType string `gorm:"not null;index" json:"serviceType"`
	IsActive    bool   `gorm:"not null;default:true;index" json:"isActive"`

	StripePriceID *string `gorm:"column:stripe_price_id;uniqueIndex:idx_services_stripe_price_id" json:"stripePriceId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ValidType(t string) bool {
	switch t {
	case TypePackage, TypeConsultation, TypeService:
		return true
	}
	return false
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryVastu, CategoryAstrology, CategoryNumerology, CategorySpiritual, CategoryOther:
		return true
	}
	return false
}

// Validate checks the fields a stored service must always satisfy.
func (s *Service) Validate() error {
	if s.Title == "" {
		return ErrMissingTitle
	}
	if s.Price < 0 {
		return ErrNegativePrice
	}
	if !ValidType(s.ServiceType) {
		return ErrInvalidType
	}
	if !ValidCategory(s.Category) {
		return ErrInvalidCategory
	}
	return nil
}
